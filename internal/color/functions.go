package color

import "math"

// Modifiers return a new Color and never change the receiver.

// WithOpacity returns the color with alpha set to opacity, clamped to [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	return newColor(c.h, c.s, c.l, opacity)
}

// WithAlpha is an alias for WithOpacity.
func (c Color) WithAlpha(alpha float64) Color {
	return c.WithOpacity(alpha)
}

// Darken subtracts amount (0.0-1.0) from lightness, stopping at 0.
func (c Color) Darken(amount float64) Color {
	return newColor(c.h, c.s, c.l-amount, c.a)
}

// Lighten adds amount (0.0-1.0) to lightness, stopping at 1.
func (c Color) Lighten(amount float64) Color {
	return newColor(c.h, c.s, c.l+amount, c.a)
}

// Saturate adds amount (0.0-1.0) to saturation, stopping at 1.
func (c Color) Saturate(amount float64) Color {
	return newColor(c.h, c.s+amount, c.l, c.a)
}

// Desaturate subtracts amount (0.0-1.0) from saturation, stopping at 0.
func (c Color) Desaturate(amount float64) Color {
	return newColor(c.h, c.s-amount, c.l, c.a)
}

// RotateHue shifts the hue by degrees. Any value is accepted; the result
// wraps around the color wheel.
func (c Color) RotateHue(degrees float64) Color {
	return newColor(c.h+degrees/360.0, c.s, c.l, c.a)
}

// Mix linearly interpolates RGB and alpha between c and other. ratio is
// clamped to [0, 1]; 0 returns c and 1 returns other.
func (c Color) Mix(other Color, ratio float64) Color {
	switch {
	case math.IsNaN(ratio) || ratio <= 0:
		return c
	case ratio >= 1:
		return other
	}
	blended := c.colorful().BlendRgb(other.colorful(), ratio)
	return fromColorful(blended, c.a+(other.a-c.a)*ratio)
}

// Grayscale removes all saturation.
func (c Color) Grayscale() Color {
	return c.Desaturate(1)
}

// Invert returns the RGB complement, keeping alpha.
func (c Color) Invert() Color {
	rgb := c.colorful()
	rgb.R, rgb.G, rgb.B = 1-rgb.R, 1-rgb.G, 1-rgb.B
	return fromColorful(rgb, c.a)
}

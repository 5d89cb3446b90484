package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// OKLCH returns the perceptual OKLCH components of the color: lightness in
// [0, 1], chroma in [0, ~0.37] and hue in degrees [0, 360).
func (c Color) OKLCH() (l, chroma, hue float64) {
	return c.colorful().OkLch()
}

// FromOKLCH creates a color from OKLCH components. Values outside the sRGB
// gamut are clamped per channel.
func FromOKLCH(l, chroma, hue, alpha float64) Color {
	return fromColorful(colorful.OkLch(l, chroma, math.Mod(hue, 360)), alpha)
}

// StepLightness returns a color with the given absolute OKLCH lightness,
// keeping the original hue, chroma and alpha. Lightness should be in [0, 1].
func (c Color) StepLightness(lightness float64) Color {
	_, chroma, hue := c.OKLCH()
	return FromOKLCH(clamp01(lightness), chroma, hue, c.a)
}

// Ramp returns n colors stepping OKLCH lightness evenly from light to dark
// (inclusive), all sharing the hue and chroma of c. It returns nil for n < 1.
func (c Color) Ramp(n int, light, dark float64) []Color {
	if n < 1 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = c.StepLightness(light)
		return out
	}
	step := (dark - light) / float64(n-1)
	for i := range out {
		out[i] = c.StepLightness(light + step*float64(i))
	}
	return out
}

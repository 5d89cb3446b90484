package color

import (
	"fmt"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable color value. HSLA is the canonical form; RGB and every
// string representation is derived from it on demand, so round trips through
// RGB never accumulate drift beyond a single rounding step.
//
// Hue is kept in [0, 1) and wraps; saturation, lightness and alpha are kept in
// [0, 1]. The zero value is transparent black.
type Color struct {
	h, s, l, a float64
}

// HSLA holds the canonical components of a Color, each in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// RGBA holds derived red/green/blue/alpha components, each in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// newColor is the single place where components enter a Color.
func newColor(h, s, l, a float64) Color {
	return Color{
		h: wrapHue(h),
		s: clamp01(s),
		l: clamp01(l),
		a: clamp01(a),
	}
}

// FromRGBA creates a color from 0-255 channels and an alpha in [0, 1].
func FromRGBA(r, g, b uint8, a float64) Color {
	return fromColorful(colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, a)
}

// RGB creates an opaque color from 0-255 channels.
func RGB(r, g, b uint8) Color {
	return FromRGBA(r, g, b, 1.0)
}

// FromARGB creates a color from a packed 0xAARRGGBB value.
func FromARGB(argb uint32) Color {
	a := uint8(argb >> 24)
	r := uint8(argb >> 16)
	g := uint8(argb >> 8)
	b := uint8(argb)
	return FromRGBA(r, g, b, float64(a)/255.0)
}

// FromHex creates an opaque color from a packed 0xRRGGBB value. Any bits
// above the low 24 are ignored.
func FromHex(hex uint32) Color {
	return FromARGB(0xFF000000 | hex)
}

// FromHSL creates an opaque color from hue in degrees and saturation and
// lightness in percent (0-100).
func FromHSL(h, s, l float64) Color {
	return FromHSLA(h, s, l, 1.0)
}

// FromHSLA is FromHSL with an explicit alpha in [0, 1].
func FromHSLA(h, s, l, a float64) Color {
	return newColor(h/360.0, s/100.0, l/100.0, a)
}

// FromHSLAUnit creates a color from components already in the canonical
// [0, 1] domains.
func FromHSLAUnit(v HSLA) Color {
	return newColor(v.H, v.S, v.L, v.A)
}

func fromColorful(c colorful.Color, a float64) Color {
	h, s, l := c.Clamped().Hsl()
	return newColor(h/360.0, s, l, a)
}

func (c Color) colorful() colorful.Color {
	return colorful.Hsl(c.h*360.0, c.s, c.l).Clamped()
}

// HSLA returns the canonical components.
func (c Color) HSLA() HSLA {
	return HSLA{H: c.h, S: c.s, L: c.l, A: c.a}
}

// RGBA returns the derived RGB components and alpha, each in [0, 1].
func (c Color) RGBA() RGBA {
	rgb := c.colorful()
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: c.a}
}

// RGB255 returns the 0-255 channels, rounded to nearest.
func (c Color) RGB255() (r, g, b uint8) {
	return c.colorful().RGB255()
}

// Alpha255 returns alpha scaled to 0-255, rounded to nearest.
func (c Color) Alpha255() uint8 {
	return uint8(math.Round(c.a * 255.0))
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	r, g, b := c.RGB255()
	return uint32(c.Alpha255())<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Hue returns the hue in [0, 1).
func (c Color) Hue() float64 { return c.h }

// Saturation returns the saturation in [0, 1].
func (c Color) Saturation() float64 { return c.s }

// Lightness returns the lightness in [0, 1].
func (c Color) Lightness() float64 { return c.l }

// Alpha returns the alpha in [0, 1].
func (c Color) Alpha() float64 { return c.a }

// HexString returns the color as six lowercase hex digits without a leading
// #, e.g. "eb6f92". Alpha is dropped.
func (c Color) HexString() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// Hex returns the color with a leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return "#" + c.HexString()
}

// CSSRGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) CSSRGB() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// CSSRGBA returns the color as an rgba() string including alpha.
func (c Color) CSSRGBA() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatFloat(round(c.a, 3)))
}

// CSSHSL returns the color as an hsl() string with integer-rounded degrees
// and percentages, e.g. "hsl(222, 47%, 11%)".
func (c Color) CSSHSL() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(math.Round(c.h*360.0)),
		int(math.Round(c.s*100.0)),
		int(math.Round(c.l*100.0)))
}

// HSLCompact returns the "<hue> <sat>% <light>%" form used by theme
// documents, e.g. "222 47% 11%". Alpha is dropped.
func (c Color) HSLCompact() string {
	return fmt.Sprintf("%s %s%% %s%%",
		formatFloat(round(c.h*360.0, 4)),
		formatFloat(round(c.s*100.0, 4)),
		formatFloat(round(c.l*100.0, 4)))
}

// String implements fmt.Stringer as "#rrggbb".
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes opaque colors as "#rrggbb" and translucent ones as
// "#aarrggbb", both of which Parse accepts.
func (c Color) MarshalText() ([]byte, error) {
	if c.Alpha255() == 0xFF {
		return []byte(c.Hex()), nil
	}
	return []byte(fmt.Sprintf("#%08x", c.ARGB())), nil
}

// UnmarshalText decodes any syntax accepted by Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Equal reports whether both colors have identical canonical components.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ApproxEqual reports whether every canonical component differs by at most
// tol. Hue distance is measured around the circle.
func (c Color) ApproxEqual(other Color, tol float64) bool {
	dh := math.Abs(c.h - other.h)
	if dh > 0.5 {
		dh = 1 - dh
	}
	return dh <= tol &&
		math.Abs(c.s-other.s) <= tol &&
		math.Abs(c.l-other.l) <= tol &&
		math.Abs(c.a-other.a) <= tol
}

// clamp01 clamps a value to the [0, 1] range. NaN becomes 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrapHue maps any hue onto [0, 1). Non-finite values become 0.
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	// h may round up to exactly 1 when adding 1 to a tiny negative value.
	if h >= 1.0 {
		h = 0
	}
	return h
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

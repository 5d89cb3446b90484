package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
)

// Parse failures. Parse wraps one of these, so callers can match with
// errors.Is.
var (
	ErrInvalidFormat = errors.New("invalid color format")
	ErrInvalidHex    = errors.New("invalid hex color")
	ErrInvalidNumber = errors.New("invalid number in color")
	ErrUnknownColor  = errors.New("unknown color name")
)

var log = commonlog.GetLogger("themekit.color")

// Parse interprets a color string. The first matching rule wins:
//
//  1. leading "#": #rgb, #rrggbb, or #aarrggbb (eight digits are ARGB)
//  2. starts with "hsl(" or contains "%": hsl(h, s%, l%) or bare "h s% l%"
//  3. starts with "rgb(": rgb(r, g, b) with 0-255 integer channels
//  4. anything else: a base palette name, case-insensitive
//
// Rule 2 routes any string containing "%" to the HSL grammar, so e.g.
// "50% 50% 50%" is read as HSL with a hue of "50%" and fails.
//
// Parse always reports malformed input. Theme documents use the lenient
// ParseHSLCompact instead.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)

	var (
		c   Color
		err error
	)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err = parseHex(s[1:])
	case strings.HasPrefix(s, "hsl(") || strings.Contains(s, "%"):
		c, err = parseHSLFunc(s)
	case strings.HasPrefix(s, "rgb("):
		c, err = parseRGBFunc(s)
	default:
		var ok bool
		c, ok = Named(s)
		if !ok {
			err = ErrUnknownColor
		}
	}
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHSLCompact parses the "<hue> <sat>% <light>%" form used by theme
// documents. Unlike Parse it never fails: malformed input is logged as a
// warning and resolves to Black, so one bad color role degrades a theme
// instead of aborting it.
func ParseHSLCompact(s string) Color {
	h, sat, l, err := splitHSL(s)
	if err != nil {
		log.Warningf("invalid HSL color %q (%s), using black", s, err)
		return Black()
	}
	return FromHSL(h, sat, l)
}

// CheckHSLCompact returns the reason ParseHSLCompact would fall back to
// black for s, or nil if s is well formed.
func CheckHSLCompact(s string) error {
	_, _, _, err := splitHSL(s)
	return err
}

// parseHex parses the digits after "#".
func parseHex(digits string) (Color, error) {
	digits = strings.TrimSpace(digits)

	if len(digits) == 3 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, ErrInvalidFormat
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, ErrInvalidHex
	}

	if len(digits) == 8 {
		return FromARGB(uint32(value)), nil
	}
	return FromHex(uint32(value)), nil
}

// parseHSLFunc parses hsl(h, s%, l%) and the bare "h s% l%" form.
func parseHSLFunc(s string) (Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "hsl(")
	s = strings.TrimRight(s, ")")

	h, sat, l, err := splitHSL(s)
	if err != nil {
		return Color{}, err
	}
	return FromHSL(h, sat, l), nil
}

// splitHSL splits three comma- or space-separated HSL tokens. Percent signs
// on saturation and lightness are optional.
func splitHSL(s string) (h, sat, l float64, err error) {
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 3 {
		return 0, 0, 0, ErrInvalidFormat
	}

	if h, err = parseNumber(parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if sat, err = parseNumber(strings.TrimRight(parts[1], "%")); err != nil {
		return 0, 0, 0, err
	}
	if l, err = parseNumber(strings.TrimRight(parts[2], "%")); err != nil {
		return 0, 0, 0, err
	}
	return h, sat, l, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// parseRGBFunc parses rgb(r, g, b).
func parseRGBFunc(s string) (Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "rgb(")
	s = strings.TrimRight(s, ")")

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, ErrInvalidFormat
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Color{}, ErrInvalidNumber
		}
		channels[i] = uint8(v)
	}
	return RGB(channels[0], channels[1], channels[2]), nil
}

// Package theme resolves theme documents into Themes and keeps the set of
// known themes in a Registry.
package theme

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/jsvensson/themekit/internal/config"
)

// Mode is the overall appearance of a theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

// ParseMode converts the mode attribute of a theme document.
func ParseMode(s string) (Mode, error) {
	switch s {
	case config.ModeLight:
		return Light, nil
	case config.ModeDark:
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown theme mode %q", s)
}

func (m Mode) String() string {
	if m == Dark {
		return config.ModeDark
	}
	return config.ModeLight
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Pixels is a length in logical pixels.
type Pixels float64

func (p Pixels) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "px"
}

// Radius is the resolved corner radius scale.
type Radius struct {
	SM, MD, LG, Full Pixels
}

// Spacing is the resolved spacing scale.
type Spacing struct {
	XS, SM, MD, LG, XL, XXL Pixels
}

// Typography is the resolved font configuration.
type Typography struct {
	FontFamily string
	FontMono   string

	SizeXS   Pixels
	SizeSM   Pixels
	SizeBase Pixels
	SizeLG   Pixels
	SizeXL   Pixels
	Size2XL  Pixels

	WeightNormal   uint16
	WeightMedium   uint16
	WeightSemibold uint16
	WeightBold     uint16
}

// Theme is a fully resolved theme. It holds no pointers, so assigning a
// Theme yields an independent snapshot.
type Theme struct {
	Name       string
	Mode       Mode
	Colors     Colors
	Radius     Radius
	Spacing    Spacing
	Typography Typography
}

// FromConfig resolves a decoded document. Colors go through the lenient
// parser, so a malformed role becomes black instead of failing. Scales are
// taken verbatim. An unrecognized mode resolves to Light; Decode already
// rejects those documents.
func FromConfig(cfg *config.ThemeConfig) Theme {
	mode, _ := ParseMode(cfg.Mode)
	return Theme{
		Name:       cfg.Name,
		Mode:       mode,
		Colors:     ColorsFromConfig(cfg.Colors),
		Radius:     RadiusFromConfig(cfg.Radius),
		Spacing:    SpacingFromConfig(cfg.Spacing),
		Typography: TypographyFromConfig(cfg.Typography),
	}
}

func RadiusFromConfig(c config.RadiusConfig) Radius {
	return Radius{SM: Pixels(c.SM), MD: Pixels(c.MD), LG: Pixels(c.LG), Full: Pixels(c.Full)}
}

func SpacingFromConfig(c config.SpacingConfig) Spacing {
	return Spacing{
		XS:  Pixels(c.XS),
		SM:  Pixels(c.SM),
		MD:  Pixels(c.MD),
		LG:  Pixels(c.LG),
		XL:  Pixels(c.XL),
		XXL: Pixels(c.XXL),
	}
}

func TypographyFromConfig(c config.TypographyConfig) Typography {
	return Typography{
		FontFamily:     c.FontFamily,
		FontMono:       c.FontMono,
		SizeXS:         Pixels(c.SizeXS),
		SizeSM:         Pixels(c.SizeSM),
		SizeBase:       Pixels(c.SizeBase),
		SizeLG:         Pixels(c.SizeLG),
		SizeXL:         Pixels(c.SizeXL),
		Size2XL:        Pixels(c.Size2XL),
		WeightNormal:   c.WeightNormal,
		WeightMedium:   c.WeightMedium,
		WeightSemibold: c.WeightSemibold,
		WeightBold:     c.WeightBold,
	}
}

// Config converts t back into a theme document. Decoding the result with
// FromConfig yields an equal theme up to compact HSL rounding.
func (t Theme) Config() *config.ThemeConfig {
	r, sp, ty := t.Radius, t.Spacing, t.Typography
	return &config.ThemeConfig{
		Name:   t.Name,
		Mode:   t.Mode.String(),
		Colors: t.Colors.Config(),
		Radius: config.RadiusConfig{
			SM:   float64(r.SM),
			MD:   float64(r.MD),
			LG:   float64(r.LG),
			Full: float64(r.Full),
		},
		Spacing: config.SpacingConfig{
			XS:  float64(sp.XS),
			SM:  float64(sp.SM),
			MD:  float64(sp.MD),
			LG:  float64(sp.LG),
			XL:  float64(sp.XL),
			XXL: float64(sp.XXL),
		},
		Typography: config.TypographyConfig{
			FontFamily:     ty.FontFamily,
			FontMono:       ty.FontMono,
			SizeXS:         float64(ty.SizeXS),
			SizeSM:         float64(ty.SizeSM),
			SizeBase:       float64(ty.SizeBase),
			SizeLG:         float64(ty.SizeLG),
			SizeXL:         float64(ty.SizeXL),
			Size2XL:        float64(ty.Size2XL),
			WeightNormal:   ty.WeightNormal,
			WeightMedium:   ty.WeightMedium,
			WeightSemibold: ty.WeightSemibold,
			WeightBold:     ty.WeightBold,
		},
	}
}

// FallbackName is the name of the theme returned when no active theme
// resolves.
const FallbackName = "fallback"

// FallbackConfig returns the document behind Fallback.
func FallbackConfig() *config.ThemeConfig {
	return &config.ThemeConfig{
		Name:       FallbackName,
		Mode:       config.ModeLight,
		Colors:     config.DefaultColors(),
		Radius:     config.DefaultRadius(),
		Spacing:    config.DefaultSpacing(),
		Typography: config.DefaultTypography(),
	}
}

// Fallback returns the built-in light theme.
func Fallback() Theme {
	return fallback()
}

var fallback = sync.OnceValue(func() Theme {
	return FromConfig(FallbackConfig())
})

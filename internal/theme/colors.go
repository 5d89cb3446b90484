package theme

import (
	"github.com/jsvensson/themekit/internal/color"
	"github.com/jsvensson/themekit/internal/config"
)

// Colors holds the 15 semantic color roles of a theme.
type Colors struct {
	Background Color
	Foreground Color

	Primary           Color
	PrimaryForeground Color

	Secondary           Color
	SecondaryForeground Color

	Muted           Color
	MutedForeground Color

	Accent           Color
	AccentForeground Color

	Destructive           Color
	DestructiveForeground Color

	Border Color
	Input  Color
	Ring   Color
}

// Color is re-exported so callers of this package rarely need to import
// the color package directly.
type Color = color.Color

// RoleNames lists the color roles in document order, using the attribute
// names of the colors block.
var RoleNames = []string{
	"background",
	"foreground",
	"primary",
	"primary_foreground",
	"secondary",
	"secondary_foreground",
	"muted",
	"muted_foreground",
	"accent",
	"accent_foreground",
	"destructive",
	"destructive_foreground",
	"border",
	"input",
	"ring",
}

// Role is a named color slot.
type Role struct {
	Name  string
	Color Color
}

// ColorsFromConfig resolves every role with color.ParseHSLCompact. No role
// is skipped; a malformed value resolves to black and is logged.
func ColorsFromConfig(c config.ColorsConfig) Colors {
	p := color.ParseHSLCompact
	return Colors{
		Background:            p(c.Background),
		Foreground:            p(c.Foreground),
		Primary:               p(c.Primary),
		PrimaryForeground:     p(c.PrimaryForeground),
		Secondary:             p(c.Secondary),
		SecondaryForeground:   p(c.SecondaryForeground),
		Muted:                 p(c.Muted),
		MutedForeground:       p(c.MutedForeground),
		Accent:                p(c.Accent),
		AccentForeground:      p(c.AccentForeground),
		Destructive:           p(c.Destructive),
		DestructiveForeground: p(c.DestructiveForeground),
		Border:                p(c.Border),
		Input:                 p(c.Input),
		Ring:                  p(c.Ring),
	}
}

// Roles returns every role in RoleNames order.
func (c Colors) Roles() []Role {
	return []Role{
		{"background", c.Background},
		{"foreground", c.Foreground},
		{"primary", c.Primary},
		{"primary_foreground", c.PrimaryForeground},
		{"secondary", c.Secondary},
		{"secondary_foreground", c.SecondaryForeground},
		{"muted", c.Muted},
		{"muted_foreground", c.MutedForeground},
		{"accent", c.Accent},
		{"accent_foreground", c.AccentForeground},
		{"destructive", c.Destructive},
		{"destructive_foreground", c.DestructiveForeground},
		{"border", c.Border},
		{"input", c.Input},
		{"ring", c.Ring},
	}
}

// Lookup returns the color for a role name.
func (c Colors) Lookup(name string) (Color, bool) {
	for _, r := range c.Roles() {
		if r.Name == name {
			return r.Color, true
		}
	}
	return Color{}, false
}

// IsRole reports whether name is one of the 15 role names.
func IsRole(name string) bool {
	for _, r := range RoleNames {
		if r == name {
			return true
		}
	}
	return false
}

// Config renders every role back to compact HSL.
func (c Colors) Config() config.ColorsConfig {
	f := func(col Color) string { return col.HSLCompact() }
	return config.ColorsConfig{
		Background:            f(c.Background),
		Foreground:            f(c.Foreground),
		Primary:               f(c.Primary),
		PrimaryForeground:     f(c.PrimaryForeground),
		Secondary:             f(c.Secondary),
		SecondaryForeground:   f(c.SecondaryForeground),
		Muted:                 f(c.Muted),
		MutedForeground:       f(c.MutedForeground),
		Accent:                f(c.Accent),
		AccentForeground:      f(c.AccentForeground),
		Destructive:           f(c.Destructive),
		DestructiveForeground: f(c.DestructiveForeground),
		Border:                f(c.Border),
		Input:                 f(c.Input),
		Ring:                  f(c.Ring),
	}
}

package color

import (
	"sort"
	"strconv"
	"strings"
)

// Material Design palette. The hex values are fixed constants, not
// approximations.

// Transparent is fully transparent black.
func Transparent() Color { return Color{} }

// Black is #000000.
func Black() Color { return RGB(0, 0, 0) }

// White is #ffffff.
func White() Color { return RGB(255, 255, 255) }

// Red
func Red() Color    { return FromHex(0xF44336) }
func Red50() Color  { return FromHex(0xFFEBEE) }
func Red100() Color { return FromHex(0xFFCDD2) }
func Red200() Color { return FromHex(0xEF9A9A) }
func Red300() Color { return FromHex(0xE57373) }
func Red400() Color { return FromHex(0xEF5350) }
func Red500() Color { return FromHex(0xF44336) }
func Red600() Color { return FromHex(0xE53935) }
func Red700() Color { return FromHex(0xD32F2F) }
func Red800() Color { return FromHex(0xC62828) }
func Red900() Color { return FromHex(0xB71C1C) }

// Blue
func Blue() Color    { return FromHex(0x2196F3) }
func Blue50() Color  { return FromHex(0xE3F2FD) }
func Blue100() Color { return FromHex(0xBBDEFB) }
func Blue200() Color { return FromHex(0x90CAF9) }
func Blue300() Color { return FromHex(0x64B5F6) }
func Blue400() Color { return FromHex(0x42A5F5) }
func Blue500() Color { return FromHex(0x2196F3) }
func Blue600() Color { return FromHex(0x1E88E5) }
func Blue700() Color { return FromHex(0x1976D2) }
func Blue800() Color { return FromHex(0x1565C0) }
func Blue900() Color { return FromHex(0x0D47A1) }

// Green
func Green() Color    { return FromHex(0x4CAF50) }
func Green50() Color  { return FromHex(0xE8F5E9) }
func Green100() Color { return FromHex(0xC8E6C9) }
func Green200() Color { return FromHex(0xA5D6A7) }
func Green300() Color { return FromHex(0x81C784) }
func Green400() Color { return FromHex(0x66BB6A) }
func Green500() Color { return FromHex(0x4CAF50) }
func Green600() Color { return FromHex(0x43A047) }
func Green700() Color { return FromHex(0x388E3C) }
func Green800() Color { return FromHex(0x2E7D32) }
func Green900() Color { return FromHex(0x1B5E20) }

// Grey
func Grey() Color    { return RGB(158, 158, 158) }
func Grey50() Color  { return FromHex(0xFAFAFA) }
func Grey100() Color { return FromHex(0xF5F5F5) }
func Grey200() Color { return FromHex(0xEEEEEE) }
func Grey300() Color { return FromHex(0xE0E0E0) }
func Grey400() Color { return FromHex(0xBDBDBD) }
func Grey500() Color { return FromHex(0x9E9E9E) }
func Grey600() Color { return FromHex(0x757575) }
func Grey700() Color { return FromHex(0x616161) }
func Grey800() Color { return FromHex(0x424242) }
func Grey900() Color { return FromHex(0x212121) }

// Gray is an alias for Grey.
func Gray() Color { return Grey() }

func Yellow() Color     { return FromHex(0xFFEB3B) }
func Amber() Color      { return FromHex(0xFFC107) }
func Amber500() Color   { return FromHex(0xFFC107) }
func Orange() Color     { return FromHex(0xFF9800) }
func Orange500() Color  { return FromHex(0xFF9800) }
func DeepOrange() Color { return FromHex(0xFF5722) }
func Purple() Color     { return FromHex(0x9C27B0) }
func Purple500() Color  { return FromHex(0x9C27B0) }
func DeepPurple() Color { return FromHex(0x673AB7) }
func Pink() Color       { return FromHex(0xE91E63) }
func Pink500() Color    { return FromHex(0xE91E63) }
func Teal() Color       { return FromHex(0x009688) }
func Teal500() Color    { return FromHex(0x009688) }
func Cyan() Color       { return FromHex(0x00BCD4) }
func Cyan500() Color    { return FromHex(0x00BCD4) }

// named maps the base names accepted by Parse. Numbered shades are not
// included here; use Shade for those.
var named = map[string]func() Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"blue":        Blue,
	"green":       Green,
	"yellow":      Yellow,
	"orange":      Orange,
	"purple":      Purple,
	"pink":        Pink,
	"grey":        Grey,
	"gray":        Gray,
	"cyan":        Cyan,
	"teal":        Teal,
	"amber":       Amber,
}

// shades maps hue name -> shade level -> constructor.
var shades = map[string]map[int]func() Color{
	"red": {
		50: Red50, 100: Red100, 200: Red200, 300: Red300, 400: Red400,
		500: Red500, 600: Red600, 700: Red700, 800: Red800, 900: Red900,
	},
	"blue": {
		50: Blue50, 100: Blue100, 200: Blue200, 300: Blue300, 400: Blue400,
		500: Blue500, 600: Blue600, 700: Blue700, 800: Blue800, 900: Blue900,
	},
	"green": {
		50: Green50, 100: Green100, 200: Green200, 300: Green300, 400: Green400,
		500: Green500, 600: Green600, 700: Green700, 800: Green800, 900: Green900,
	},
	"grey": {
		50: Grey50, 100: Grey100, 200: Grey200, 300: Grey300, 400: Grey400,
		500: Grey500, 600: Grey600, 700: Grey700, 800: Grey800, 900: Grey900,
	},
	"amber":       {500: Amber500},
	"orange":      {500: Orange500},
	"purple":      {500: Purple500},
	"pink":        {500: Pink500},
	"teal":        {500: Teal500},
	"cyan":        {500: Cyan500},
	"yellow":      {500: Yellow},
	"deep_orange": {500: DeepOrange},
	"deep_purple": {500: DeepPurple},
}

// Named returns the palette color for a base name, case-insensitively.
func Named(name string) (Color, bool) {
	f, ok := named[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return f(), true
}

// Shade returns a numbered palette entry such as ("blue", 700).
// "gray" is accepted as an alias for "grey".
func Shade(hue string, level int) (Color, bool) {
	hue = strings.ToLower(hue)
	if hue == "gray" {
		hue = "grey"
	}
	ladder, ok := shades[hue]
	if !ok {
		return Color{}, false
	}
	f, ok := ladder[level]
	if !ok {
		return Color{}, false
	}
	return f(), true
}

// PaletteNames returns the base names accepted by Named, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteEntry is a single named palette color.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette returns every base name and every numbered shade (as
// "<hue>_<level>"), sorted by name.
func Palette() []PaletteEntry {
	entries := make([]PaletteEntry, 0, len(named)+64)
	for name, f := range named {
		entries = append(entries, PaletteEntry{Name: name, Color: f()})
	}
	for hue, ladder := range shades {
		for level, f := range ladder {
			entries = append(entries, PaletteEntry{Name: hue + "_" + strconv.Itoa(level), Color: f()})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

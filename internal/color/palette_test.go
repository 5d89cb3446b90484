package color

import (
	"sort"
	"testing"
)

func TestPaletteHexValues(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"red", Red(), "f44336"},
		{"red50", Red50(), "ffebee"},
		{"red900", Red900(), "b71c1c"},
		{"blue", Blue(), "2196f3"},
		{"blue700", Blue700(), "1976d2"},
		{"green", Green(), "4caf50"},
		{"green800", Green800(), "2e7d32"},
		{"grey", Grey(), "9e9e9e"},
		{"grey900", Grey900(), "212121"},
		{"yellow", Yellow(), "ffeb3b"},
		{"amber", Amber(), "ffc107"},
		{"orange", Orange(), "ff9800"},
		{"deep orange", DeepOrange(), "ff5722"},
		{"purple", Purple(), "9c27b0"},
		{"deep purple", DeepPurple(), "673ab7"},
		{"pink", Pink(), "e91e63"},
		{"teal", Teal(), "009688"},
		{"cyan", Cyan(), "00bcd4"},
		{"black", Black(), "000000"},
		{"white", White(), "ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.HexString(); got != tt.want {
				t.Errorf("HexString() = %q, want %q", got, tt.want)
			}
			if tt.color.Alpha() != 1 {
				t.Errorf("Alpha() = %v, want 1", tt.color.Alpha())
			}
		})
	}
}

func TestTransparent(t *testing.T) {
	if a := Transparent().Alpha(); a != 0 {
		t.Errorf("Transparent().Alpha() = %v, want 0", a)
	}
}

func TestNamed(t *testing.T) {
	for _, name := range PaletteNames() {
		if _, ok := Named(name); !ok {
			t.Errorf("Named(%q) not found", name)
		}
	}
	if c, ok := Named("TEAL"); !ok || !c.Equal(Teal()) {
		t.Errorf("Named(TEAL) = %s, %v", c, ok)
	}
	if _, ok := Named("red_500"); ok {
		t.Error("Named should not resolve numbered shades")
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		hue   string
		level int
		want  Color
		ok    bool
	}{
		{"blue", 700, Blue700(), true},
		{"Red", 50, Red50(), true},
		{"gray", 400, Grey400(), true},
		{"deep_purple", 500, DeepPurple(), true},
		{"blue", 550, Color{}, false},
		{"magenta", 500, Color{}, false},
	}

	for _, tt := range tests {
		got, ok := Shade(tt.hue, tt.level)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("Shade(%q, %d) = %s, %v, want %s, %v", tt.hue, tt.level, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPalette(t *testing.T) {
	entries := Palette()
	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name }) {
		t.Error("Palette() is not sorted by name")
	}

	seen := make(map[string]Color, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			t.Errorf("duplicate palette entry %q", e.Name)
		}
		seen[e.Name] = e.Color
	}

	for _, name := range []string{"red", "grey_900", "blue_50", "deep_orange_500"} {
		if _, ok := seen[name]; !ok {
			t.Errorf("Palette() missing %q", name)
		}
	}
	if !seen["green_800"].Equal(Green800()) {
		t.Errorf("green_800 = %s, want %s", seen["green_800"], Green800())
	}
}

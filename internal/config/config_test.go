package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/hcl/v2"
)

const sampleHCL = `
name = "slate"
mode = "dark"

colors {
  background             = "222 84% 5%"
  foreground             = "210 40% 98%"
  primary                = "210 40% 98%"
  primary_foreground     = "222 47% 11%"
  secondary              = "217 33% 17%"
  secondary_foreground   = "210 40% 98%"
  muted                  = "217 33% 17%"
  muted_foreground       = "215 20% 65%"
  accent                 = "217 33% 17%"
  accent_foreground      = "210 40% 98%"
  destructive            = "0 63% 31%"
  destructive_foreground = "210 40% 98%"
  border                 = "217 33% 17%"
  input                  = "217 33% 17%"
  ring                   = "213 27% 84%"
}

radius {
  sm   = 2
  md   = 6
  lg   = 10
  full = 9999
}

spacing {
  xs  = 4
  sm  = 8
  md  = 16
  lg  = 24
  xl  = 32
  xxl = 48
}

typography {
  font_family     = "Inter"
  font_mono       = "JetBrains Mono"
  size_xs         = 12
  size_sm         = 14
  size_base       = 16
  size_lg         = 18
  size_xl         = 20
  size_2xl        = 24
  weight_normal   = 400
  weight_medium   = 500
  weight_semibold = 600
  weight_bold     = 700
}
`

const sampleJSON = `{
  "name": "paper",
  "mode": "light",
  "colors": {
    "background": "0 0% 100%",
    "foreground": "222 84% 5%",
    "primary": "222 47% 11%",
    "primary_foreground": "210 40% 98%",
    "secondary": "210 40% 96%",
    "secondary_foreground": "222 47% 11%",
    "muted": "210 40% 96%",
    "muted_foreground": "215 16% 47%",
    "accent": "210 40% 96%",
    "accent_foreground": "222 47% 11%",
    "destructive": "0 84% 60%",
    "destructive_foreground": "210 40% 98%",
    "border": "214 32% 91%",
    "input": "214 32% 91%",
    "ring": "222 84% 5%"
  },
  "radius": {"sm": 4, "md": 8, "lg": 12, "full": 9999},
  "spacing": {"xs": 4, "sm": 8, "md": 16, "lg": 24, "xl": 32, "xxl": 48},
  "typography": {
    "font_family": "system-ui",
    "font_mono": "monospace",
    "size_xs": 12, "size_sm": 14, "size_base": 16,
    "size_lg": 18, "size_xl": 20, "size_2xl": 24,
    "weight_normal": 400, "weight_medium": 500,
    "weight_semibold": 600, "weight_bold": 700
  }
}`

// ignoreRemain skips the leftover bodies, which hold parser internals.
var ignoreRemain = cmpopts.IgnoreInterfaces(struct{ hcl.Body }{})

func TestDecodeHCL(t *testing.T) {
	cfg, err := Decode([]byte(sampleHCL), "slate.hcl")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Name != "slate" {
		t.Errorf("Name = %q, want %q", cfg.Name, "slate")
	}
	if cfg.Mode != ModeDark {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeDark)
	}
	if cfg.Colors.Ring != "213 27% 84%" {
		t.Errorf("Colors.Ring = %q", cfg.Colors.Ring)
	}
	wantRadius := RadiusConfig{SM: 2, MD: 6, LG: 10, Full: 9999}
	if diff := cmp.Diff(wantRadius, cfg.Radius, ignoreRemain); diff != "" {
		t.Errorf("Radius mismatch (-want +got):\n%s", diff)
	}
	if cfg.Typography.FontMono != "JetBrains Mono" || cfg.Typography.WeightSemibold != 600 {
		t.Errorf("Typography = %+v", cfg.Typography)
	}
}

func TestDecodeJSON(t *testing.T) {
	cfg, err := Decode([]byte(sampleJSON), "paper.json")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Name != "paper" || cfg.Mode != ModeLight {
		t.Errorf("Name/Mode = %q/%q", cfg.Name, cfg.Mode)
	}
	if diff := cmp.Diff(DefaultColors().Primary, cfg.Colors.Primary); diff != "" {
		t.Errorf("Colors.Primary mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultSpacing(), cfg.Spacing, ignoreRemain); diff != "" {
		t.Errorf("Spacing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultTypography(), cfg.Typography, ignoreRemain); diff != "" {
		t.Errorf("Typography mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	src := strings.Replace(sampleHCL, `mode = "dark"`, `mode = "dark"
author = "someone"
extra {
  anything = true
}`, 1)
	src = strings.Replace(src, `ring                   = "213 27% 84%"`, `ring = "213 27% 84%"
  chart_1 = "12 76% 61%"`, 1)

	cfg, err := Decode([]byte(src), "slate.hcl")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Colors.Ring != "213 27% 84%" {
		t.Errorf("Colors.Ring = %q", cfg.Colors.Ring)
	}
}

func TestDecode_UnknownJSONFieldsIgnored(t *testing.T) {
	src := strings.Replace(sampleJSON, `"mode": "light",`, `"mode": "light", "version": 3,`, 1)
	if _, err := Decode([]byte(src), "paper.json"); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		filename string
		wantErr  string
	}{
		{
			name:     "syntax error",
			src:      `name = `,
			filename: "bad.hcl",
			wantErr:  "parsing theme",
		},
		{
			name:     "invalid json",
			src:      `{"name": }`,
			filename: "bad.json",
			wantErr:  "parsing theme",
		},
		{
			name:     "missing attribute",
			src:      strings.Replace(sampleHCL, `name = "slate"`, ``, 1),
			filename: "slate.hcl",
			wantErr:  "name",
		},
		{
			name:     "missing color role",
			src:      strings.Replace(sampleHCL, `ring                   = "213 27% 84%"`, ``, 1),
			filename: "slate.hcl",
			wantErr:  "ring",
		},
		{
			name:     "missing block",
			src:      sampleHCL[:strings.Index(sampleHCL, "typography {")],
			filename: "slate.hcl",
			wantErr:  "typography",
		},
		{
			name:     "invalid mode",
			src:      strings.Replace(sampleHCL, `mode = "dark"`, `mode = "dim"`, 1),
			filename: "slate.hcl",
			wantErr:  `mode must be "light" or "dark"`,
		},
		{
			name:     "empty name",
			src:      strings.Replace(sampleHCL, `name = "slate"`, `name = "  "`, 1),
			filename: "slate.hcl",
			wantErr:  "name must not be empty",
		},
		{
			name:     "wrong type",
			src:      strings.Replace(sampleHCL, `weight_bold     = 700`, `weight_bold = "heavy"`, 1),
			filename: "slate.hcl",
			wantErr:  "decoding theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src), tt.filename)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slate.hcl")
	if err := os.WriteFile(path, []byte(sampleHCL), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Name != "slate" {
		t.Errorf("Name = %q, want %q", cfg.Name, "slate")
	}

	if _, err := Load(filepath.Join(dir, "missing.hcl")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsJSON(t *testing.T) {
	tests := map[string]bool{
		"theme.json":        true,
		"THEME.JSON":        true,
		"theme.hcl":         false,
		"theme":             false,
		"dir.json/theme":    false,
		"theme.json.hcl":    false,
		"default-dark.json": true,
	}
	for name, want := range tests {
		if got := IsJSON(name); got != want {
			t.Errorf("IsJSON(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestEncodeHCL_RoundTrip(t *testing.T) {
	cfg, err := Decode([]byte(sampleJSON), "paper.json")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	out := EncodeHCL(cfg)
	if !strings.Contains(string(out), "colors {") {
		t.Errorf("expected a colors block, got:\n%s", out)
	}

	back, err := Decode(out, "paper.hcl")
	if err != nil {
		t.Fatalf("Decode(EncodeHCL()) error: %v\n%s", err, out)
	}
	if diff := cmp.Diff(cfg, back, ignoreRemain); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultColorsAreComplete(t *testing.T) {
	cfg := ThemeConfig{
		Name:       "fallback",
		Mode:       ModeLight,
		Colors:     DefaultColors(),
		Radius:     DefaultRadius(),
		Spacing:    DefaultSpacing(),
		Typography: DefaultTypography(),
	}
	back, err := Decode(EncodeHCL(&cfg), "fallback.hcl")
	if err != nil {
		t.Fatalf("defaults do not form a valid document: %v", err)
	}
	if back.Colors.Background != "0 0% 100%" || back.Colors.Ring != "222 84% 5%" {
		t.Errorf("Colors = %+v", back.Colors)
	}
}

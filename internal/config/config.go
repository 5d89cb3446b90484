package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/json"
)

// Theme modes accepted in the mode attribute.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// ThemeConfig is the raw theme document as written by users. Every listed
// field is required; anything else in the document is ignored.
type ThemeConfig struct {
	Name       string           `hcl:"name"`
	Mode       string           `hcl:"mode"`
	Colors     ColorsConfig     `hcl:"colors,block"`
	Radius     RadiusConfig     `hcl:"radius,block"`
	Spacing    SpacingConfig    `hcl:"spacing,block"`
	Typography TypographyConfig `hcl:"typography,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

// ColorsConfig holds the 15 color roles as compact HSL strings,
// e.g. "222 47% 11%".
type ColorsConfig struct {
	Background            string   `hcl:"background"`
	Foreground            string   `hcl:"foreground"`
	Primary               string   `hcl:"primary"`
	PrimaryForeground     string   `hcl:"primary_foreground"`
	Secondary             string   `hcl:"secondary"`
	SecondaryForeground   string   `hcl:"secondary_foreground"`
	Muted                 string   `hcl:"muted"`
	MutedForeground       string   `hcl:"muted_foreground"`
	Accent                string   `hcl:"accent"`
	AccentForeground      string   `hcl:"accent_foreground"`
	Destructive           string   `hcl:"destructive"`
	DestructiveForeground string   `hcl:"destructive_foreground"`
	Border                string   `hcl:"border"`
	Input                 string   `hcl:"input"`
	Ring                  string   `hcl:"ring"`
	Remain                hcl.Body `hcl:",remain"`
}

// RadiusConfig holds corner radii in pixels.
type RadiusConfig struct {
	SM     float64  `hcl:"sm"`
	MD     float64  `hcl:"md"`
	LG     float64  `hcl:"lg"`
	Full   float64  `hcl:"full"`
	Remain hcl.Body `hcl:",remain"`
}

// SpacingConfig holds the spacing scale in pixels.
type SpacingConfig struct {
	XS     float64  `hcl:"xs"`
	SM     float64  `hcl:"sm"`
	MD     float64  `hcl:"md"`
	LG     float64  `hcl:"lg"`
	XL     float64  `hcl:"xl"`
	XXL    float64  `hcl:"xxl"`
	Remain hcl.Body `hcl:",remain"`
}

// TypographyConfig holds font families, sizes in pixels and weights.
type TypographyConfig struct {
	FontFamily     string   `hcl:"font_family"`
	FontMono       string   `hcl:"font_mono"`
	SizeXS         float64  `hcl:"size_xs"`
	SizeSM         float64  `hcl:"size_sm"`
	SizeBase       float64  `hcl:"size_base"`
	SizeLG         float64  `hcl:"size_lg"`
	SizeXL         float64  `hcl:"size_xl"`
	Size2XL        float64  `hcl:"size_2xl"`
	WeightNormal   uint16   `hcl:"weight_normal"`
	WeightMedium   uint16   `hcl:"weight_medium"`
	WeightSemibold uint16   `hcl:"weight_semibold"`
	WeightBold     uint16   `hcl:"weight_bold"`
	Remain         hcl.Body `hcl:",remain"`
}

// Load reads and decodes a theme document from disk.
func Load(path string) (*ThemeConfig, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Decode(src, path)
}

// Decode parses a theme document. Files ending in .json are read as HCL's
// JSON syntax; everything else is native HCL. Unlike per-role color
// resolution, any structural problem here is an error.
func Decode(src []byte, filename string) (*ThemeConfig, error) {
	file, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}

	var cfg ThemeConfig
	if diags := gohcl.DecodeBody(file.Body, EvalContext(), &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding theme: %s", diags.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse parses src into an hcl.File without decoding it, picking the syntax
// from the file extension.
func Parse(src []byte, filename string) (*hcl.File, error) {
	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if IsJSON(filename) {
		file, diags = json.Parse(src, filename)
	} else {
		file, diags = hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing theme: %s", diags.Error())
	}
	return file, nil
}

// IsJSON reports whether filename should be parsed as JSON.
func IsJSON(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

// Validate checks the values that the schema alone cannot express.
func (c *ThemeConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("theme name must not be empty")
	}
	switch c.Mode {
	case ModeLight, ModeDark:
	default:
		return fmt.Errorf("theme %q: mode must be %q or %q, got %q", c.Name, ModeLight, ModeDark, c.Mode)
	}
	return nil
}

// DefaultColors returns the color roles of the built-in light fallback.
func DefaultColors() ColorsConfig {
	return ColorsConfig{
		Background:            "0 0% 100%",
		Foreground:            "0 0% 0%",
		Primary:               "222 47% 11%",
		PrimaryForeground:     "210 40% 98%",
		Secondary:             "210 40% 96%",
		SecondaryForeground:   "222 47% 11%",
		Muted:                 "210 40% 96%",
		MutedForeground:       "215 16% 47%",
		Accent:                "210 40% 96%",
		AccentForeground:      "222 47% 11%",
		Destructive:           "0 84% 60%",
		DestructiveForeground: "210 40% 98%",
		Border:                "214 32% 91%",
		Input:                 "214 32% 91%",
		Ring:                  "222 84% 5%",
	}
}

// DefaultRadius returns the standard radius scale.
func DefaultRadius() RadiusConfig {
	return RadiusConfig{SM: 4, MD: 8, LG: 12, Full: 9999}
}

// DefaultSpacing returns the standard 4px-based spacing scale.
func DefaultSpacing() SpacingConfig {
	return SpacingConfig{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48}
}

// DefaultTypography returns system fonts with a 16px base size.
func DefaultTypography() TypographyConfig {
	return TypographyConfig{
		FontFamily:     "system-ui",
		FontMono:       "monospace",
		SizeXS:         12,
		SizeSM:         14,
		SizeBase:       16,
		SizeLG:         18,
		SizeXL:         20,
		Size2XL:        24,
		WeightNormal:   400,
		WeightMedium:   500,
		WeightSemibold: 600,
		WeightBold:     700,
	}
}

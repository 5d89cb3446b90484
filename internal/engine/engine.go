// Package engine renders application config files from a resolved theme
// using text/template.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/jsvensson/themekit/internal/color"
	"github.com/jsvensson/themekit/internal/theme"
)

// Engine loads and executes Go templates against the theme its Theme
// source reports as active.
type Engine struct {
	Theme        theme.ActiveTheme
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the active theme, and writes one output file per template with the
// .tmpl suffix removed. The theme is read once, so every file of a run
// sees the same theme. Run returns the theme it rendered.
func (e *Engine) Run() (theme.Theme, error) {
	if e.Theme == nil {
		return theme.Theme{}, errors.New("engine has no theme source")
	}
	t := e.Theme.Active()

	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return theme.Theme{}, fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return theme.Theme{}, fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(t)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return theme.Theme{}, err
		}
	}

	return t, nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Name       string
	Mode       string
	Colors     theme.Colors
	Roles      []theme.Role
	Radius     theme.Radius
	Spacing    theme.Spacing
	Typography theme.Typography
	FuncMap    template.FuncMap
}

// resolveColor turns a template argument into a Color. Strings may be a
// role path ("colors.primary"), a palette path ("palette.blue_700"), a bare
// role name, or anything color.Parse accepts.
func resolveColor(v any, colors theme.Colors) (color.Color, error) {
	switch c := v.(type) {
	case color.Color:
		return c, nil
	case string:
		return resolveColorPath(c, colors)
	default:
		return color.Color{}, fmt.Errorf("expected color or string, got %T", v)
	}
}

// resolveColorPath resolves a dot-notation path or color literal.
func resolveColorPath(path string, colors theme.Colors) (color.Color, error) {
	block, name, found := strings.Cut(path, ".")
	if found {
		switch block {
		case "colors":
			c, ok := colors.Lookup(name)
			if !ok {
				return color.Color{}, fmt.Errorf("color role not found: %s", name)
			}
			return c, nil
		case "palette":
			if c, ok := color.Named(name); ok {
				return c, nil
			}
			if hue, level, ok := splitShade(name); ok {
				if c, ok := color.Shade(hue, level); ok {
					return c, nil
				}
			}
			return color.Color{}, fmt.Errorf("palette path not found: %s", path)
		}
	}

	if c, ok := colors.Lookup(path); ok {
		return c, nil
	}
	c, err := color.Parse(path)
	if err != nil {
		return color.Color{}, fmt.Errorf("resolving %q: %w", path, err)
	}
	return c, nil
}

// splitShade splits "blue_700" into ("blue", 700).
func splitShade(name string) (string, int, bool) {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return "", 0, false
	}
	level, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return "", 0, false
	}
	return name[:i], level, true
}

func buildTemplateData(t theme.Theme) templateData {
	colors := t.Colors
	resolve := func(v any) (color.Color, error) {
		return resolveColor(v, colors)
	}

	return templateData{
		Name:       t.Name,
		Mode:       t.Mode.String(),
		Colors:     t.Colors,
		Roles:      t.Colors.Roles(),
		Radius:     t.Radius,
		Spacing:    t.Spacing,
		Typography: t.Typography,
		FuncMap: template.FuncMap{
			"hex": func(v any) (string, error) {
				c, err := resolve(v)
				return c.Hex(), err
			},
			"hexBare": func(v any) (string, error) {
				c, err := resolve(v)
				return c.HexString(), err
			},
			"rgb": func(v any) (string, error) {
				c, err := resolve(v)
				return c.CSSRGB(), err
			},
			"rgba": func(v any) (string, error) {
				c, err := resolve(v)
				return c.CSSRGBA(), err
			},
			"hsl": func(v any) (string, error) {
				c, err := resolve(v)
				return c.CSSHSL(), err
			},
			"compact": func(v any) (string, error) {
				c, err := resolve(v)
				return c.HSLCompact(), err
			},
			"role": func(name string) (color.Color, error) {
				c, ok := colors.Lookup(name)
				if !ok {
					return color.Color{}, fmt.Errorf("color role not found: %s", name)
				}
				return c, nil
			},
			"darken": func(amount float64, v any) (color.Color, error) {
				c, err := resolve(v)
				return c.Darken(amount), err
			},
			"lighten": func(amount float64, v any) (color.Color, error) {
				c, err := resolve(v)
				return c.Lighten(amount), err
			},
			"alpha": func(opacity float64, v any) (color.Color, error) {
				c, err := resolve(v)
				return c.WithOpacity(opacity), err
			},
			"mix": func(a, b any, ratio float64) (color.Color, error) {
				ca, err := resolve(a)
				if err != nil {
					return color.Color{}, err
				}
				cb, err := resolve(b)
				if err != nil {
					return color.Color{}, err
				}
				return ca.Mix(cb, ratio), nil
			},
			"oklch": func(v any) (string, error) {
				c, err := resolve(v)
				l, chroma, hue := c.OKLCH()
				return fmt.Sprintf("oklch(%.2f%% %.4f %.2f)", l*100, chroma, hue), err
			},
			"ramp": func(n int, light, dark float64, v any) ([]color.Color, error) {
				c, err := resolve(v)
				return c.Ramp(n, light, dark), err
			},
			"px": func(p theme.Pixels) string {
				return p.String()
			},
		},
	}
}

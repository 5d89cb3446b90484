// Package themekit loads color themes and keeps them in a registry that
// renderers query for the active theme.
package themekit

import (
	"fmt"

	"github.com/jsvensson/themekit/internal/config"
	"github.com/jsvensson/themekit/internal/theme"
)

// Theme is a fully resolved theme.
type Theme = theme.Theme

// Registry holds named themes and the active one.
type Registry = theme.Registry

// ActiveTheme is the capability renderers depend on to get the theme to
// draw with.
type ActiveTheme = theme.ActiveTheme

// Load reads and resolves a single theme file (.hcl or .json).
func Load(path string) (Theme, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Theme{}, fmt.Errorf("loading theme: %w", err)
	}
	return theme.FromConfig(cfg), nil
}

// NewRegistry returns a registry seeded with the bundled default themes,
// with default-light active.
func NewRegistry() (*Registry, error) {
	r := theme.NewRegistry()
	if err := theme.RegisterDefaults(r); err != nil {
		return nil, fmt.Errorf("seeding registry: %w", err)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics if a bundled theme fails
// to load.
func MustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

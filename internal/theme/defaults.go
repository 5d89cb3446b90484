package theme

import (
	"embed"
	"fmt"
	"path"
)

//go:embed themes/*.json
var bundled embed.FS

// Names of the bundled themes, in registration order.
const (
	DefaultLight = "default-light"
	DefaultDark  = "default-dark"
)

// DefaultNames lists the bundled themes in registration order. The first
// one becomes active on an empty registry.
var DefaultNames = []string{DefaultLight, DefaultDark}

// BundledSource returns the raw document of a bundled theme.
func BundledSource(name string) ([]byte, error) {
	return bundled.ReadFile(path.Join("themes", name+".json"))
}

// RegisterDefaults registers the bundled themes. The documents ship with the
// binary, so an error here means a broken build and callers should treat it
// as fatal.
func RegisterDefaults(r *Registry) error {
	for _, name := range DefaultNames {
		src, err := BundledSource(name)
		if err != nil {
			return fmt.Errorf("reading bundled theme %s: %w", name, err)
		}
		if _, err := r.RegisterSerialized(src, name+".json"); err != nil {
			return fmt.Errorf("bundled theme %s: %w", name, err)
		}
	}
	return nil
}

package theme

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/jsvensson/themekit/internal/config"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("themekit.theme")

// ErrUnnamedTheme is returned when registering a theme whose Name is empty.
var ErrUnnamedTheme = errors.New("theme has no name")

// ActiveTheme is implemented by anything that can hand out the theme to
// render with. Renderers should depend on this rather than on *Registry.
type ActiveTheme interface {
	Active() Theme
}

// Static is an ActiveTheme that always returns the same theme.
type Static Theme

// Active implements ActiveTheme.
func (s Static) Active() Theme {
	return Theme(s)
}

// Registry is a concurrency-safe set of named themes with one active theme.
// Readers share a lock; registration and SetActive take it exclusively.
// Every method returns copies, so later registry changes never affect a
// Theme a caller already holds.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]Theme
	active string
}

// NewRegistry creates an empty registry. Its Active method returns
// Fallback until a theme is registered.
func NewRegistry() *Registry {
	return &Registry{
		themes: make(map[string]Theme),
	}
}

// RegisterSerialized decodes and resolves a theme document, then registers
// it. A document that fails to decode leaves the registry unchanged.
func (r *Registry) RegisterSerialized(src []byte, filename string) (Theme, error) {
	cfg, err := config.Decode(src, filename)
	if err != nil {
		return Theme{}, fmt.Errorf("registering %s: %w", filename, err)
	}
	t := FromConfig(cfg)
	if err := r.Register(t); err != nil {
		return Theme{}, fmt.Errorf("registering %s: %w", filename, err)
	}
	return t, nil
}

// RegisterFile reads and registers a theme document from disk.
func (r *Registry) RegisterFile(path string) (Theme, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("registering %s: %w", path, err)
	}
	return r.RegisterSerialized(src, path)
}

// Register stores t under t.Name, replacing any theme of the same name. The
// first theme registered becomes active. A theme with an empty name is
// rejected with ErrUnnamedTheme and the registry is left unchanged.
func (r *Registry) Register(t Theme) error {
	if t.Name == "" {
		return ErrUnnamedTheme
	}

	r.mu.Lock()
	_, replaced := r.themes[t.Name]
	r.themes[t.Name] = t
	first := r.active == ""
	if first {
		r.active = t.Name
	}
	r.mu.Unlock()

	if replaced {
		log.Infof("replaced theme %q", t.Name)
	} else {
		log.Infof("registered theme %q", t.Name)
	}
	if first {
		log.Debugf("active theme is now %q", t.Name)
	}
	return nil
}

// SetActive makes the named theme active. It reports false, and changes
// nothing, if no theme has that name.
func (r *Registry) SetActive(name string) bool {
	r.mu.Lock()
	_, ok := r.themes[name]
	if ok {
		r.active = name
	}
	r.mu.Unlock()

	if ok {
		log.Debugf("active theme is now %q", name)
	} else {
		log.Debugf("cannot activate unknown theme %q", name)
	}
	return ok
}

// Active returns a copy of the active theme, or Fallback if there is none.
// It never fails.
func (r *Registry) Active() Theme {
	r.mu.RLock()
	t, ok := r.themes[r.active]
	r.mu.RUnlock()

	if !ok {
		return Fallback()
	}
	return t
}

// ActiveName returns the name of the active theme, or "" if none is set.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Get returns a copy of the named theme. Unlike Active it never substitutes
// the fallback.
func (r *Registry) Get(name string) (Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	return t, ok
}

// List returns the registered theme names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.themes)
}

package themekit

import (
	"errors"
	"sort"

	invoicepdf "github.com/Israrkhan09/invoice-website"
)

// Resolver combines a custom kit directory with the built-in presets.
// When a custom directory is configured, it is tried first, falling back to
// the built-ins when the kit is not found there.
type Resolver struct {
	custom  Loader // nil if no custom directory configured
	builtin Loader
}

// NewResolver creates a Resolver.
// If customDir is empty, only built-in presets are served.
// Returns error if customDir is set but invalid.
func NewResolver(customDir string) (*Resolver, error) {
	r := &Resolver{builtin: NewBuiltinLoader()}

	if customDir != "" {
		dl, err := NewDirLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.custom = dl
	}

	return r, nil
}

// Load returns the named kit, trying the custom directory first if one is
// configured. Falls back to the built-ins only for not-found, never for
// validation or I/O errors.
func (r *Resolver) Load(name string) (invoicepdf.Theme, error) {
	if r.custom == nil {
		return r.builtin.Load(name)
	}

	theme, err := r.custom.Load(name)
	if err == nil {
		return theme, nil
	}
	if !errors.Is(err, ErrKitNotFound) {
		return invoicepdf.Theme{}, err
	}

	return r.builtin.Load(name)
}

// Names lists every kit the resolver can serve, sorted and deduplicated.
// Custom kits shadowing a built-in of the same name appear once.
func (r *Resolver) Names() []string {
	seen := make(map[string]bool)
	for _, name := range r.builtin.Names() {
		seen[name] = true
	}
	if r.custom != nil {
		for _, name := range r.custom.Names() {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasCustomKits reports whether a custom kit directory is configured.
func (r *Resolver) HasCustomKits() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)

package themekit

import (
	"fmt"
	"sort"

	invoicepdf "github.com/Israrkhan09/invoice-website"
)

// BuiltinLoader serves the presets compiled into the library.
// Implements Loader.
type BuiltinLoader struct{}

// NewBuiltinLoader creates a BuiltinLoader.
func NewBuiltinLoader() *BuiltinLoader {
	return &BuiltinLoader{}
}

// Load returns a built-in preset by name. Names are case-insensitive.
func (b *BuiltinLoader) Load(name string) (invoicepdf.Theme, error) {
	if err := ValidateKitName(name); err != nil {
		return invoicepdf.Theme{}, err
	}

	theme, ok := invoicepdf.PresetTheme(name)
	if !ok {
		return invoicepdf.Theme{}, fmt.Errorf("%w: %q", ErrKitNotFound, name)
	}

	return theme, nil
}

// Names lists the built-in preset names, sorted.
func (b *BuiltinLoader) Names() []string {
	presets := invoicepdf.Presets()
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*BuiltinLoader)(nil)

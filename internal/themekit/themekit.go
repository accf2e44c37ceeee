package themekit

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	invoicepdf "github.com/Israrkhan09/invoice-website"
)

// Loader defines the contract for loading theme kits by name.
// Implementations may load from built-in presets, a directory, a database,
// or remote storage.
type Loader interface {
	// Load returns the kit with the given name.
	// Returns ErrKitNotFound if the kit doesn't exist.
	// Returns ErrInvalidKitName if the name contains invalid characters.
	Load(name string) (invoicepdf.Theme, error)

	// Names lists the kit names this loader can serve, sorted.
	Names() []string
}

// maxKitSize caps kit files. A kit holds a handful of short strings, so
// anything larger than this is not a kit.
const maxKitSize = 64 * 1024

// ValidateKitName checks that a kit name is safe for use as a filename.
// Returns ErrInvalidKitName if the name is empty or contains path
// separators, dots (which could allow extension manipulation), or traversal
// characters.
func ValidateKitName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidKitName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidKitName, name)
	}
	return nil
}

// kitDoc is the YAML shape of a kit file. Every field is optional; omitted
// fields keep the library defaults.
type kitDoc struct {
	Colors struct {
		Primary   string `yaml:"primary"`
		Secondary string `yaml:"secondary"`
		Accent    string `yaml:"accent"`
	} `yaml:"colors"`
	Fonts struct {
		Heading string `yaml:"heading"`
		Body    string `yaml:"body"`
	} `yaml:"fonts"`
}

func (d kitDoc) theme() invoicepdf.Theme {
	return invoicepdf.Theme{
		Colors: invoicepdf.ThemeColors{
			Primary:   d.Colors.Primary,
			Secondary: d.Colors.Secondary,
			Accent:    d.Colors.Accent,
		},
		Fonts: invoicepdf.ThemeFonts{
			Heading: d.Fonts.Heading,
			Body:    d.Fonts.Body,
		},
	}
}

// decodeKit parses a kit file with unknown fields rejected, so typos in
// keys surface as errors instead of silently dropped settings.
func decodeKit(name string, data []byte) (invoicepdf.Theme, error) {
	if len(data) == 0 {
		return invoicepdf.Theme{}, fmt.Errorf("%w: %q: empty file", ErrKitParse, name)
	}
	if len(data) > maxKitSize {
		return invoicepdf.Theme{}, fmt.Errorf("%w: %q: %d bytes (max %d)", ErrKitParse, name, len(data), maxKitSize)
	}
	var doc kitDoc
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return invoicepdf.Theme{}, fmt.Errorf("%w: %q: %v", ErrKitParse, name, err)
	}
	return doc.theme(), nil
}

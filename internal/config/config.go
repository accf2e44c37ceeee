// Package config loads and validates the CLI's YAML surfaces: the tool
// configuration and per-invoice documents. Values stay as plain strings or
// decimals; conversion to library types happens in the CLI layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrDocumentParse   = errors.New("failed to parse invoice document")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrTooManyItems    = errors.New("too many line items")
	ErrNegativeTaxRate = errors.New("tax rate cannot be negative")
)

// Field length limits for multi-tenant safety.
const (
	MaxNameLength        = 100  // Person or business name
	MaxCompanyLength     = 100  // Company name
	MaxEmailLength       = 254  // RFC 5321
	MaxPhoneLength       = 30   // Including country code and separators
	MaxAddressLength     = 500  // Multi-line postal address
	MaxNumberLength      = 50   // Invoice number / reference
	MaxDateLength        = 60   // Literal or "auto+30d:MMMM D, YYYY"
	MaxItemIDLength      = 64   // Caller-assigned item identifier
	MaxDescriptionLength = 500  // Line item description
	MaxNotesLength       = 2000 // Free-form notes block
	MaxColorLength       = 20   // "#2563eb"
	MaxFontLength        = 100  // "JetBrains Mono, monospace"
	MaxPresetLength      = 50   // Theme preset name
	MaxPageSizeLength    = 10   // "a4", "letter", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxDirLength         = 2048 // Output directory path
)

// MaxInvoiceItems caps line items per document.
const MaxInvoiceItems = 500

// Config holds tool-level configuration shared across exports.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Issuer PartyConfig  `yaml:"issuer"`
	Tax    TaxConfig    `yaml:"tax"`
	Page   PageConfig   `yaml:"page"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// PartyConfig describes one side of an invoice. As tool config it is the
// default issuer, merged into documents that omit issuer fields.
type PartyConfig struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

// TaxConfig defines the default tax rate.
type TaxConfig struct {
	Rate Decimal `yaml:"rate"` // e.g. 0.08 for 8% (empty = library default)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// ThemeConfig selects a preset and/or overrides individual theme fields.
// Explicit colors and fonts win over the preset field-by-field. Dir points
// at a directory of custom theme kits searched before the built-in presets.
type ThemeConfig struct {
	Preset string       `yaml:"preset"`
	Dir    string       `yaml:"dir"`
	Colors ColorsConfig `yaml:"colors"`
	Fonts  FontsConfig  `yaml:"fonts"`
}

// ColorsConfig holds CSS-style hex colors.
type ColorsConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`
}

// FontsConfig names preferred font families.
type FontsConfig struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Validate checks field lengths to prevent abuse in multi-tenant scenarios.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validatePartyLengths("issuer", c.Issuer); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if c.Tax.Rate.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeTaxRate, c.Tax.Rate)
	}
	if err := validateThemeLengths(c.Theme); err != nil {
		return err
	}
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	return nil
}

func validatePartyLengths(prefix string, p PartyConfig) error {
	if err := validateFieldLength(prefix+".name", p.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength(prefix+".company", p.Company, MaxCompanyLength); err != nil {
		return err
	}
	if err := validateFieldLength(prefix+".email", p.Email, MaxEmailLength); err != nil {
		return err
	}
	if err := validateFieldLength(prefix+".phone", p.Phone, MaxPhoneLength); err != nil {
		return err
	}
	return validateFieldLength(prefix+".address", p.Address, MaxAddressLength)
}

func validateThemeLengths(t ThemeConfig) error {
	if err := validateFieldLength("theme.preset", t.Preset, MaxPresetLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.dir", t.Dir, MaxDirLength); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"theme.colors.primary":   t.Colors.Primary,
		"theme.colors.secondary": t.Colors.Secondary,
		"theme.colors.accent":    t.Colors.Accent,
	} {
		if err := validateFieldLength(field, value, MaxColorLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("theme.fonts.heading", t.Fonts.Heading, MaxFontLength); err != nil {
		return err
	}
	return validateFieldLength("theme.fonts.body", t.Fonts.Body, MaxFontLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: library defaults for tax,
// page and theme, output to the current directory.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/invoicepdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "invoicepdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

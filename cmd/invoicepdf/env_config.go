package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Israrkhan09/invoice-website/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string          // INVOICEPDF_CONFIG: config file name or path
	OutputDir   string          // INVOICEPDF_OUTPUT_DIR: default output directory
	IssuerName  string          // INVOICEPDF_ISSUER_NAME: default issuer name
	IssuerEmail string          // INVOICEPDF_ISSUER_EMAIL: default issuer email
	TaxRate     decimal.Decimal // INVOICEPDF_TAX_RATE: default tax rate
	PageSize    string          // INVOICEPDF_PAGE_SIZE: a4, letter, legal
	Theme       string          // INVOICEPDF_THEME: theme kit name
	ThemeDir    string          // INVOICEPDF_THEME_DIR: custom kit directory
	Workers     int             // INVOICEPDF_WORKERS: parallel workers
}

// knownEnvVars lists valid INVOICEPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"INVOICEPDF_CONFIG":       true,
	"INVOICEPDF_OUTPUT_DIR":   true,
	"INVOICEPDF_ISSUER_NAME":  true,
	"INVOICEPDF_ISSUER_EMAIL": true,
	"INVOICEPDF_TAX_RATE":     true,
	"INVOICEPDF_PAGE_SIZE":    true,
	"INVOICEPDF_THEME":        true,
	"INVOICEPDF_THEME_DIR":    true,
	"INVOICEPDF_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized INVOICEPDF_* values. Unparseable
// numeric values are ignored, keeping the variable unset.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("INVOICEPDF_CONFIG"),
		OutputDir:   os.Getenv("INVOICEPDF_OUTPUT_DIR"),
		IssuerName:  os.Getenv("INVOICEPDF_ISSUER_NAME"),
		IssuerEmail: os.Getenv("INVOICEPDF_ISSUER_EMAIL"),
		PageSize:    os.Getenv("INVOICEPDF_PAGE_SIZE"),
		Theme:       os.Getenv("INVOICEPDF_THEME"),
		ThemeDir:    os.Getenv("INVOICEPDF_THEME_DIR"),
	}

	if rate := os.Getenv("INVOICEPDF_TAX_RATE"); rate != "" {
		if d, err := decimal.NewFromString(rate); err == nil && d.Sign() > 0 {
			cfg.TaxRate = d
		}
	}

	if workers := os.Getenv("INVOICEPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized INVOICEPDF_* variables.
// Helps catch typos like INVOICEPDF_ISUER_NAME.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "INVOICEPDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.IssuerName != "" && cfg.Issuer.Name == "" {
		cfg.Issuer.Name = env.IssuerName
	}
	if env.IssuerEmail != "" && cfg.Issuer.Email == "" {
		cfg.Issuer.Email = env.IssuerEmail
	}

	if !env.TaxRate.IsZero() && cfg.Tax.Rate.IsZero() {
		cfg.Tax.Rate = config.Decimal{Decimal: env.TaxRate}
	}

	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}

	if env.Theme != "" && cfg.Theme.Preset == "" {
		cfg.Theme.Preset = env.Theme
	}
	if env.ThemeDir != "" && cfg.Theme.Dir == "" {
		cfg.Theme.Dir = env.ThemeDir
	}
}

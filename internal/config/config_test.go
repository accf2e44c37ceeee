package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Issuer.Name != "" {
		t.Errorf("Issuer.Name = %q, want empty", cfg.Issuer.Name)
	}
	if !cfg.Tax.Rate.IsZero() {
		t.Errorf("Tax.Rate = %s, want zero", cfg.Tax.Rate)
	}
	if cfg.Theme.Preset != "" {
		t.Errorf("Theme.Preset = %q, want empty", cfg.Theme.Preset)
	}
	if cfg.Page.Size != "" {
		t.Errorf("Page.Size = %q, want empty", cfg.Page.Size)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			fieldName: "test",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			fieldName: "test",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value under limit is valid",
			fieldName: "test",
			value:     "12345",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			fieldName: "test.field",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes validation", func(t *testing.T) {
		cfg := &Config{
			Output: OutputConfig{DefaultDir: "./exports"},
			Issuer: PartyConfig{
				Name:    "Acme Studio",
				Company: "Acme Studio LLC",
				Email:   "billing@acme.test",
				Phone:   "+1-555-0100",
				Address: "100 Main St\nSpringfield",
			},
			Tax: TaxConfig{Rate: Decimal{decimal.NewFromFloat(0.08)}},
			Theme: ThemeConfig{
				Preset: "classic",
				Colors: ColorsConfig{Primary: "#2563eb"},
			},
			Page: PageConfig{Size: "a4", Orientation: "portrait", Margin: 0.5},
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("issuer.name too long returns error", func(t *testing.T) {
		cfg := &Config{
			Issuer: PartyConfig{Name: string(make([]byte, MaxNameLength+1))},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("issuer.email too long returns error", func(t *testing.T) {
		cfg := &Config{
			Issuer: PartyConfig{Email: string(make([]byte, MaxEmailLength+1))},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("issuer.address too long returns error", func(t *testing.T) {
		cfg := &Config{
			Issuer: PartyConfig{Address: string(make([]byte, MaxAddressLength+1))},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("output.defaultDir too long returns error", func(t *testing.T) {
		cfg := &Config{
			Output: OutputConfig{DefaultDir: string(make([]byte, MaxDirLength+1))},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("negative tax rate returns error", func(t *testing.T) {
		cfg := &Config{
			Tax: TaxConfig{Rate: Decimal{decimal.NewFromFloat(-0.05)}},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrNegativeTaxRate) {
			t.Errorf("error = %v, want ErrNegativeTaxRate", err)
		}
	})

	t.Run("zero tax rate is valid", func(t *testing.T) {
		cfg := &Config{Tax: TaxConfig{}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("theme.preset too long returns error", func(t *testing.T) {
		cfg := &Config{
			Theme: ThemeConfig{Preset: string(make([]byte, MaxPresetLength+1))},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("theme.colors.primary too long returns error", func(t *testing.T) {
		cfg := &Config{
			Theme: ThemeConfig{Colors: ColorsConfig{Primary: string(make([]byte, MaxColorLength+1))}},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("theme.fonts.body too long returns error", func(t *testing.T) {
		cfg := &Config{
			Theme: ThemeConfig{Fonts: FontsConfig{Body: string(make([]byte, MaxFontLength+1))}},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("page.size too long returns error", func(t *testing.T) {
		cfg := &Config{
			Page: PageConfig{Size: string(make([]byte, MaxPageSizeLength+1))},
		}
		err := cfg.Validate()
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("page enum values are not checked here", func(t *testing.T) {
		// Size and orientation enums are validated by the library when the
		// exporter is built, so typos still fit within the length limit.
		cfg := &Config{Page: PageConfig{Size: "tabloid"}}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `output:
  defaultDir: "./exports"
issuer:
  name: "Acme Studio"
  email: "billing@acme.test"
tax:
  rate: 0.08
theme:
  preset: "forest"
  colors:
    primary: "#15803d"
page:
  size: "letter"
  orientation: "landscape"
  margin: 1.0
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.DefaultDir != "./exports" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "./exports")
		}
		if cfg.Issuer.Name != "Acme Studio" {
			t.Errorf("Issuer.Name = %q, want %q", cfg.Issuer.Name, "Acme Studio")
		}
		if got := cfg.Tax.Rate.String(); got != "0.08" {
			t.Errorf("Tax.Rate = %s, want 0.08", got)
		}
		if cfg.Theme.Preset != "forest" {
			t.Errorf("Theme.Preset = %q, want %q", cfg.Theme.Preset, "forest")
		}
		if cfg.Theme.Colors.Primary != "#15803d" {
			t.Errorf("Theme.Colors.Primary = %q, want %q", cfg.Theme.Colors.Primary, "#15803d")
		}
		if cfg.Page.Size != "letter" {
			t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "letter")
		}
		if cfg.Page.Orientation != "landscape" {
			t.Errorf("Page.Orientation = %q, want %q", cfg.Page.Orientation, "landscape")
		}
		if cfg.Page.Margin != 1.0 {
			t.Errorf("Page.Margin = %v, want %v", cfg.Page.Margin, 1.0)
		}
	})

	t.Run("quoted tax rate parses the same as bare", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := "tax:\n  rate: \"0.0825\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got := cfg.Tax.Rate.String(); got != "0.0825" {
			t.Errorf("Tax.Rate = %s, want 0.0825", got)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("theme: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unknown.yaml")
		content := `theme:
  preset: "classic"
unknownField: "should fail"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("field too long returns ErrFieldTooLong", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "toolong.yaml")
		longName := strings.Repeat("x", MaxNameLength+1)
		content := "issuer:\n  name: \"" + longName + "\"\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("running as root: chmod 0000 cannot make the file unreadable")
		}
		dir := t.TempDir()
		configPath := filepath.Join(dir, "unreadable.yaml")
		if err := os.WriteFile(configPath, []byte("theme:\n  preset: test\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chmod(configPath, 0000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(configPath, 0600)

		_, err := LoadConfig(configPath)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "myconfig.yaml")
		if err := os.WriteFile(configPath, []byte("theme:\n  preset: fromname\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Theme.Preset != "fromname" {
			t.Errorf("Theme.Preset = %q, want %q", cfg.Theme.Preset, "fromname")
		}
	})

	t.Run("config name resolves yml when yaml not found", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "myconfig.yml")
		if err := os.WriteFile(configPath, []byte("theme:\n  preset: fromyml\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Theme.Preset != "fromyml" {
			t.Errorf("Theme.Preset = %q, want %q", cfg.Theme.Preset, "fromyml")
		}
	})

	t.Run("config name prefers yaml over yml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yaml"), []byte("theme:\n  preset: yaml\n"), 0600); err != nil {
			t.Fatalf("setup yaml: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "myconfig.yml"), []byte("theme:\n  preset: yml\n"), 0600); err != nil {
			t.Fatalf("setup yml: %v", err)
		}

		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Theme.Preset != "yaml" {
			t.Errorf("Theme.Preset = %q, want %q (should prefer .yaml)", cfg.Theme.Preset, "yaml")
		}
	})

	t.Run("config name resolves from user config directory", func(t *testing.T) {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			t.Skip("cannot get user config dir")
		}

		appConfigDir := filepath.Join(userConfigDir, "invoicepdf")
		configPath := filepath.Join(appConfigDir, "testconfig.yaml")

		if err := os.MkdirAll(appConfigDir, 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(configPath, []byte("theme:\n  preset: userdir\n"), 0600); err != nil {
			t.Fatalf("setup write: %v", err)
		}
		defer os.Remove(configPath)

		// Change to empty dir so local file isn't found
		dir := t.TempDir()
		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		cfg, err := LoadConfig("testconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Theme.Preset != "userdir" {
			t.Errorf("Theme.Preset = %q, want %q", cfg.Theme.Preset, "userdir")
		}
	})

	t.Run("config name not found returns ErrConfigNotFound", func(t *testing.T) {
		dir := t.TempDir()
		originalWd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		defer os.Chdir(originalWd)
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("chdir: %v", err)
		}

		_, err = LoadConfig("nonexistent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})
}

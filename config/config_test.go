package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := DefaultConfig()
	if cfg.Company != def.Company || cfg.Estimate != def.Estimate || cfg.PDF != def.PDF || cfg.Theme != def.Theme {
		t.Errorf("Load without file = %+v, want defaults %+v", cfg, def)
	}
	if cfg.Issuer().Prefix != "ILC" || cfg.Issuer().Name != "Inspired Living Constructions Inc." {
		t.Errorf("Issuer = %+v", cfg.Issuer())
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ilc.yaml")
	content := `
company:
  name: Test Builders Ltd.
estimate:
  prefix: TB
pdf:
  page_size: letter
  orientation: landscape
  margin: 12
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Company.Name != "Test Builders Ltd." {
		t.Errorf("company.name = %q", cfg.Company.Name)
	}
	if cfg.Company.Contact != DefaultConfig().Company.Contact {
		t.Errorf("company.contact should keep its default, got %q", cfg.Company.Contact)
	}
	if cfg.Estimate.Prefix != "TB" {
		t.Errorf("estimate.prefix = %q", cfg.Estimate.Prefix)
	}
	settings := cfg.PDFSettings()
	if settings.PageSize != "letter" || settings.Orientation != "landscape" || settings.Margin != 12 {
		t.Errorf("PDFSettings = %+v", settings)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ilc.yaml")
	if err := os.WriteFile(path, []byte("estimate:\n  prefix: FILE\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ILC_ESTIMATE__PREFIX", "ENV")
	t.Setenv("ILC_THEME__COOKIE", "site-theme")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Estimate.Prefix != "ENV" {
		t.Errorf("estimate.prefix = %q, want ENV", cfg.Estimate.Prefix)
	}
	if cfg.Theme.Cookie != "site-theme" {
		t.Errorf("theme.cookie = %q", cfg.Theme.Cookie)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ilc.yaml")
	if err := os.WriteFile(path, []byte("company: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"missing company", func(c *Config) { c.Company.Name = "" }, "company.name"},
		{"missing prefix", func(c *Config) { c.Estimate.Prefix = "" }, "estimate.prefix"},
		{"prefix with slash", func(c *Config) { c.Estimate.Prefix = "A/B" }, "spaces or slashes"},
		{"bad timezone", func(c *Config) { c.Estimate.Timezone = "Mars/Olympus" }, "estimate.timezone"},
		{"negative margin", func(c *Config) { c.PDF.Margin = -1 }, "pdf.margin"},
		{"bad page size", func(c *Config) { c.PDF.PageSize = "tabloid" }, "pdf.page_size"},
		{"upper-case page size", func(c *Config) { c.PDF.PageSize = "A4" }, ""},
		{"bad orientation", func(c *Config) { c.PDF.Orientation = "diagonal" }, "pdf.orientation"},
		{"missing cookie", func(c *Config) { c.Theme.Cookie = "" }, "theme.cookie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ilc.yaml")
	cfg := DefaultConfig()
	cfg.Estimate.Prefix = "RT"
	cfg.PDF.Margin = 8

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Estimate.Prefix != "RT" || loaded.PDF.Margin != 8 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLocation(t *testing.T) {
	cfg := DefaultConfig()
	loc := cfg.Location()
	if loc.String() != "America/Edmonton" {
		t.Errorf("Location = %q", loc)
	}

	cfg.Estimate.Timezone = "Nowhere/Special"
	if cfg.Location() != time.UTC {
		t.Error("invalid zone should fall back to UTC")
	}
}

// Package config loads site settings: the estimate issuer, PDF page setup and
// the theme cookie.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"ilcquote/services"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "ilc.yaml"

// EnvPrefix marks environment overrides, e.g. ILC_ESTIMATE__PREFIX.
const EnvPrefix = "ILC_"

// Config is the site configuration.
type Config struct {
	Company  CompanyConfig  `koanf:"company" yaml:"company"`
	Estimate EstimateConfig `koanf:"estimate" yaml:"estimate"`
	PDF      PDFConfig      `koanf:"pdf" yaml:"pdf"`
	Theme    ThemeConfig    `koanf:"theme" yaml:"theme"`
}

// CompanyConfig is printed in the estimate header.
type CompanyConfig struct {
	Name    string `koanf:"name" yaml:"name"`
	Contact string `koanf:"contact" yaml:"contact"`
}

// EstimateConfig controls estimate numbering.
type EstimateConfig struct {
	Prefix   string `koanf:"prefix" yaml:"prefix"`
	Timezone string `koanf:"timezone" yaml:"timezone"`
}

// PDFConfig is the page setup of exported estimates.
type PDFConfig struct {
	Margin      float64 `koanf:"margin" yaml:"margin"`
	PageSize    string  `koanf:"page_size" yaml:"page_size"`
	Orientation string  `koanf:"orientation" yaml:"orientation"`
}

// ThemeConfig names the preference cookie.
type ThemeConfig struct {
	Cookie string `koanf:"cookie" yaml:"cookie"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Company: CompanyConfig{
			Name:    services.DefaultIssuer.Name,
			Contact: services.DefaultIssuer.Contact,
		},
		Estimate: EstimateConfig{
			Prefix:   services.DefaultEstimatePrefix,
			Timezone: "America/Edmonton",
		},
		PDF: PDFConfig{
			Margin:      services.DefaultPDFSettings.Margin,
			PageSize:    services.DefaultPDFSettings.PageSize,
			Orientation: services.DefaultPDFSettings.Orientation,
		},
		Theme: ThemeConfig{
			Cookie: services.DefaultThemeCookie,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ILC_*). Nested keys use a double
// underscore: ILC_PDF__PAGE_SIZE -> pdf.page_size.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validPageSizes = map[string]bool{"a4": true, "letter": true, "legal": true}

var validOrientations = map[string]bool{"portrait": true, "landscape": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("company.name is required")
	}
	if c.Estimate.Prefix == "" {
		return fmt.Errorf("estimate.prefix is required")
	}
	if strings.ContainsAny(c.Estimate.Prefix, `/\ `) {
		return fmt.Errorf("estimate.prefix %q must not contain spaces or slashes", c.Estimate.Prefix)
	}
	if _, err := time.LoadLocation(c.Estimate.Timezone); err != nil {
		return fmt.Errorf("invalid estimate.timezone %q: %w", c.Estimate.Timezone, err)
	}
	if c.PDF.Margin < 0 {
		return fmt.Errorf("pdf.margin must be non-negative")
	}
	if !validPageSizes[strings.ToLower(c.PDF.PageSize)] {
		return fmt.Errorf("invalid pdf.page_size %q: must be one of a4, letter, legal", c.PDF.PageSize)
	}
	if !validOrientations[strings.ToLower(c.PDF.Orientation)] {
		return fmt.Errorf("invalid pdf.orientation %q: must be portrait or landscape", c.PDF.Orientation)
	}
	if c.Theme.Cookie == "" {
		return fmt.Errorf("theme.cookie is required")
	}
	return nil
}

// Issuer returns the estimate issuer described by the config.
func (c *Config) Issuer() services.Issuer {
	return services.Issuer{
		Name:    c.Company.Name,
		Contact: c.Company.Contact,
		Prefix:  c.Estimate.Prefix,
	}
}

// PDFSettings returns the page setup for exported estimates.
func (c *Config) PDFSettings() services.PDFSettings {
	return services.PDFSettings{
		Margin:      c.PDF.Margin,
		PageSize:    c.PDF.PageSize,
		Orientation: c.PDF.Orientation,
	}
}

// Location returns the zone estimate numbers are stamped in. It falls back to
// UTC if the zone cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Estimate.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

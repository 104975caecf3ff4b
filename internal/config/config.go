package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config location relative to the working directory.
const DefaultPath = ".lumina/config.yaml"

// Config holds all Lumina configuration.
type Config struct {
	// Storefront identity
	Shop ShopConfig `yaml:"shop"`

	// Assistant panel backend
	Assistant AssistantConfig `yaml:"assistant"`

	// Where the catalogue comes from
	Catalog CatalogConfig `yaml:"catalog"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`
}

// ShopConfig holds the storefront branding.
type ShopConfig struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// CatalogConfig selects the catalogue source.
type CatalogConfig struct {
	Source string `yaml:"source"` // builtin, yaml, sqlite
	Path   string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shop: ShopConfig{
			Name:    "LUMINA",
			Tagline: "Elevated essentials for a thoughtful home.",
		},

		Assistant: DefaultAssistantConfig(),

		Catalog: CatalogConfig{
			Source: "builtin",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   ".lumina/logs/lumina.log",
		},

		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API_KEY is the legacy name; GEMINI_API_KEY wins when both are set.
	if key := os.Getenv("API_KEY"); key != "" {
		c.Assistant.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Assistant.APIKey = key
	}

	if model := os.Getenv("LUMINA_MODEL"); model != "" {
		c.Assistant.Model = model
	}

	// LUMINA_CATALOG=<source>:<path>, e.g. sqlite:data/catalog.db
	if spec := os.Getenv("LUMINA_CATALOG"); spec != "" {
		source, path, _ := strings.Cut(spec, ":")
		c.Catalog.Source = source
		c.Catalog.Path = path
	}

	if os.Getenv("LUMINA_DARK_MODE") == "1" {
		c.UI.Theme = "dark"
	}
}

// ValidCatalogSources lists the accepted catalog.source values.
var ValidCatalogSources = []string{"builtin", "yaml", "sqlite"}

// Validate validates the configuration. A missing API key is not an error:
// the storefront still works and the assistant answers with its fallback.
func (c *Config) Validate() error {
	valid := false
	for _, s := range ValidCatalogSources {
		if c.Catalog.Source == s {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid catalog source: %s (valid: %v)", c.Catalog.Source, ValidCatalogSources)
	}
	if c.Catalog.Source != "builtin" && c.Catalog.Path == "" {
		return fmt.Errorf("catalog source %s requires catalog.path", c.Catalog.Source)
	}

	if strings.TrimSpace(c.Assistant.Model) == "" {
		return fmt.Errorf("assistant model must not be empty")
	}

	if _, err := c.Logging.LevelName(); err != nil {
		return err
	}

	return nil
}

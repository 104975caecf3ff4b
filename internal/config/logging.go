package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`                // debug, info, warn (warning), error; empty = info
	Format     string          `yaml:"format"`               // json, console
	File       string          `yaml:"file"`                 // empty = stderr
	Categories map[string]bool `yaml:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Categories not listed are enabled.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// LevelName returns the canonical level name: debug, info, warn or error.
// An empty level means info and "warning" is accepted as warn.
func (c *LoggingConfig) LevelName() (string, error) {
	switch c.Level {
	case "", "info":
		return "info", nil
	case "warn", "warning":
		return "warn", nil
	case "debug", "error":
		return c.Level, nil
	default:
		return "", fmt.Errorf("invalid log level: %s", c.Level)
	}
}

package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source names accepted by Load.
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceSQLite  = "sqlite"
)

// catalogFile is the on-disk YAML layout.
type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Load resolves a catalogue from the named source. An empty source means builtin.
func Load(ctx context.Context, source, path string) (*Catalog, error) {
	switch source {
	case "", SourceBuiltin:
		return Default(), nil
	case SourceYAML:
		return LoadYAML(path)
	case SourceSQLite:
		return LoadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown catalog source %q (valid: %s, %s, %s)", source, SourceBuiltin, SourceYAML, SourceSQLite)
	}
}

// LoadYAML reads a catalogue from a YAML file with a top-level products list.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c, err := New(cf.Products)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// SaveYAML writes products in the layout LoadYAML expects.
func SaveYAML(path string, products []Product) error {
	data, err := yaml.Marshal(catalogFile{Products: products})
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

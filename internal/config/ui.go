package config

// UIConfig holds terminal UI configuration.
type UIConfig struct {
	// Theme is auto, light or dark.
	Theme string `yaml:"theme"`
}

package config

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// AssistantConfig configures the assistant gateway.
// Temperature and timeouts are fixed by the gateway, not configured here.
type AssistantConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model"`

	// BaseURL overrides the Gemini API endpoint (trailing slash required).
	BaseURL string `yaml:"base_url,omitempty"`
}

// DefaultAssistantConfig returns the assistant defaults.
func DefaultAssistantConfig() AssistantConfig {
	return AssistantConfig{
		Model: DefaultModel,
	}
}

// HasAPIKey reports whether a key is configured.
func (a AssistantConfig) HasAPIKey() bool {
	return a.APIKey != ""
}

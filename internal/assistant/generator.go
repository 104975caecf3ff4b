package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Request is a single text-generation call.
type Request struct {
	Model             string
	SystemInstruction string
	Prompt            string
	Temperature       float32
}

// Generator issues one text-generation request and returns the reply text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// ErrNoAPIKey is returned by the generator used when no Gemini key is configured.
var ErrNoAPIKey = errors.New("gemini API key not configured (set GEMINI_API_KEY)")

// Unavailable returns a Generator that always fails with err.
func Unavailable(err error) Generator {
	return GeneratorFunc(func(context.Context, Request) (string, error) {
		return "", err
	})
}

// =============================================================================
// GOOGLE GENAI GENERATOR
// =============================================================================

// GenAIGenerator generates replies using Google's Gemini API.
type GenAIGenerator struct {
	client *genai.Client
}

// GenAIOption adjusts the client configuration of a GenAIGenerator.
type GenAIOption func(*genai.ClientConfig)

// WithBaseURL points the client at a different Gemini API endpoint,
// e.g. a proxy. The URL must end with a slash.
func WithBaseURL(url string) GenAIOption {
	return func(c *genai.ClientConfig) { c.HTTPOptions.BaseURL = url }
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) GenAIOption {
	return func(c *genai.ClientConfig) { c.HTTPClient = hc }
}

// NewGenAIGenerator creates a Gemini-backed generator.
func NewGenAIGenerator(ctx context.Context, apiKey string, opts ...GenAIOption) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIGenerator{client: client}, nil
}

// Generate sends req.Prompt with req.SystemInstruction as the system instruction.
// A response without candidates yields empty text, not an error.
func (g *GenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(req.Temperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	if resp == nil {
		return "", nil
	}

	return resp.Text(), nil
}

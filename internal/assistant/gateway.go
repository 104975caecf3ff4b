// Package assistant bridges shopper questions to the Gemini text-generation
// API. The Gateway turns one utterance into one reply and never fails: any
// error from the service collapses into a fixed fallback message.
package assistant

import (
	"context"
	"fmt"

	"lumina/internal/catalog"
	"lumina/internal/logging"

	"go.uber.org/zap"
)

const (
	// Temperature is the fixed sampling temperature for every request.
	Temperature float32 = 0.7

	// FallbackMessage is returned when the service call fails outright.
	FallbackMessage = "Our AI assistant is currently resting. Please browse our collection!"

	// ApologyMessage is returned when the service replies with no text.
	ApologyMessage = "I'm sorry, I couldn't process that request right now."
)

// Advisor answers a single shopper utterance.
type Advisor interface {
	Advise(ctx context.Context, utterance string) string
}

// Gateway sends the catalogue context plus the latest utterance to a Generator.
// It is stateless between calls; the conversation history is not forwarded.
type Gateway struct {
	gen         Generator
	model       string
	instruction string
	logger      *zap.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger used for failed calls.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// NewGateway builds a gateway for the given model. The system instruction is
// rendered once from products since the catalogue never changes.
func NewGateway(gen Generator, model string, products []catalog.Product, opts ...Option) *Gateway {
	g := &Gateway{
		gen:         gen,
		model:       model,
		instruction: BuildSystemInstruction(products),
		logger:      logging.Get(logging.CategoryAssistant),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the model identifier fixed at construction.
func (g *Gateway) Model() string {
	return g.model
}

// SystemInstruction returns the persona and catalogue context sent with every call.
func (g *Gateway) SystemInstruction() string {
	return g.instruction
}

// Advise issues exactly one generation request. The reply text is returned
// verbatim; an empty reply becomes ApologyMessage and any failure, including a
// panicking generator, becomes FallbackMessage.
func (g *Gateway) Advise(ctx context.Context, utterance string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("assistant call panicked", zap.Any("panic", r))
			reply = FallbackMessage
		}
	}()

	text, err := g.gen.Generate(ctx, Request{
		Model:             g.model,
		SystemInstruction: g.instruction,
		Prompt:            utterance,
		Temperature:       Temperature,
	})
	if err != nil {
		g.logger.Warn("assistant call failed",
			zap.String("model", g.model),
			zap.Error(err))
		return FallbackMessage
	}

	if text == "" {
		g.logger.Debug("assistant returned empty reply", zap.String("model", g.model))
		return ApologyMessage
	}

	g.logger.Debug("assistant replied",
		zap.String("model", g.model),
		zap.Int("chars", len(text)))
	return text
}

// String describes the gateway for diagnostics.
func (g *Gateway) String() string {
	return fmt.Sprintf("assistant.Gateway(model=%s)", g.model)
}

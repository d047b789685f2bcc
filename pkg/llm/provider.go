// Package llm holds the text-completion provider abstraction and the
// response sanitizer. Providers are swappable per deployment; callers only
// depend on the Provider interface.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Params are the generation settings fixed at startup. They are not
// user-controllable.
type Params struct {
	Model             string
	MaxTokens         int
	Temperature       float32
	TopP              float32
	RepetitionPenalty float32
}

// Provider accepts a prompt string and returns generated text. One call, one
// attempt; retry policy is the caller's decision.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NewProvider builds the provider named by config. The API key must be
// non-empty; callers decide how a missing key degrades the service.
func NewProvider(provider, apiKey string, params Params) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key for provider %q", provider)
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIProvider(apiKey, params), nil
	case "gemini":
		return NewGeminiProvider(apiKey, params)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"roamio/pkg/llm"
	"roamio/pkg/utils"
)

type AssistantServiceInterface interface {
	Chat(ctx context.Context, message string) (string, error)
}

// AssistantService forwards a single user message to the configured
// text-completion provider and sanitizes the reply. It keeps no state between
// calls; concurrent requests are fully independent.
type AssistantService struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewAssistantService accepts a nil provider: that leaves the relay in a
// degraded state where every call reports ErrAssistantUnavailable instead of
// failing the whole process at startup.
func NewAssistantService(provider llm.Provider, timeout time.Duration, logger *zap.Logger) AssistantServiceInterface {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AssistantService{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

func (a *AssistantService) Chat(ctx context.Context, message string) (string, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return "", utils.ErrInvalidInput
	}

	if a.provider == nil {
		return "", utils.ErrAssistantUnavailable
	}

	prompt := llm.SystemPrompt + "\n\nCustomer: " + text + "\nAssistant:"

	// Single attempt; model providers do not guarantee idempotent generation,
	// so no retries. The timeout bounds how long a slow upstream can hold a
	// request slot.
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.provider.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("assistant upstream call failed",
			zap.String("provider", a.provider.Name()),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	return llm.Sanitize(raw), nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roamio/pkg/llm"
	"roamio/pkg/utils"
)

type mockProvider struct {
	completeFunc func(ctx context.Context, prompt string) (string, error)
	calls        int
	lastPrompt   string
}

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	return m.completeFunc(ctx, prompt)
}

func (m *mockProvider) Name() string { return "mock" }

func TestChatForwardsMessageOnce(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "Pokhara is lovely in October.", nil
		},
	}
	svc := NewAssistantService(provider, time.Second, zap.NewNop())

	reply, err := svc.Chat(context.Background(), "When should I visit Pokhara?")

	require.NoError(t, err)
	assert.Equal(t, "Pokhara is lovely in October.", reply)
	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, provider.lastPrompt, "When should I visit Pokhara?")
	assert.True(t, strings.HasPrefix(provider.lastPrompt, llm.SystemPrompt))
}

func TestChatRejectsEmptyInputWithoutUpstreamCall(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "should never be called", nil
		},
	}
	svc := NewAssistantService(provider, time.Second, zap.NewNop())

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := svc.Chat(context.Background(), message)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	}
	assert.Equal(t, 0, provider.calls)
}

func TestChatWithoutProviderReportsUnavailable(t *testing.T) {
	svc := NewAssistantService(nil, time.Second, zap.NewNop())

	_, err := svc.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, utils.ErrAssistantUnavailable)
}

func TestChatWrapsUpstreamFailure(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	svc := NewAssistantService(provider, time.Second, zap.NewNop())

	_, err := svc.Chat(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrUpstreamFailure)
	assert.Equal(t, 1, provider.calls, "a failed call is not retried")
}

func TestChatSanitizesLeakedPrompt(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return llm.SystemPrompt + " Kathmandu is great because of its temples.", nil
		},
	}
	svc := NewAssistantService(provider, time.Second, zap.NewNop())

	reply, err := svc.Chat(context.Background(), "tell me about Kathmandu")

	require.NoError(t, err)
	assert.Equal(t, "Kathmandu is great because of its temples.", reply)
}

func TestChatEmptyCompletionYieldsFallback(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "   ", nil
		},
	}
	svc := NewAssistantService(provider, time.Second, zap.NewNop())

	reply, err := svc.Chat(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, llm.FallbackReply, reply)
}

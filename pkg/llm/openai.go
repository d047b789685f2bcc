package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client *openai.Client
	params Params
}

func NewOpenAIProvider(apiKey string, params Params) *OpenAIProvider {
	if params.Model == "" {
		params.Model = openai.GPT3Dot5Turbo
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		params: params,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.params.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   p.params.MaxTokens,
		Temperature: p.params.Temperature,
		TopP:        p.params.TopP,
		// The chat API has no repetition_penalty; frequency penalty is the
		// nearest control (penalty 1.1 ~ frequency 0.1).
		FrequencyPenalty: p.params.RepetitionPenalty - 1,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no completion returned")
	}

	return resp.Choices[0].Message.Content, nil
}

package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roamio/pkg/llm"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean_text_passes_through",
			input:    "Kathmandu is a wonderful destination in spring.",
			expected: "Kathmandu is a wonderful destination in spring.",
		},
		{
			name:     "strips_leaked_system_prompt",
			input:    llm.SystemPrompt + " Kathmandu is great because of its temples.",
			expected: "Kathmandu is great because of its temples.",
		},
		{
			name:     "strips_paraphrased_prompt_echo",
			input:    "You are a helpful travel assistant. Your role is to answer in a friendly tone. Kathmandu is great because of its temples.",
			expected: "Kathmandu is great because of its temples.",
		},
		{
			name:     "strips_role_label_echo",
			input:    "User: where should I go?\nAssistant: Try Pokhara for the lake views.",
			expected: "Try Pokhara for the lake views.",
		},
		{
			name:     "strips_trailing_customer_echo",
			input:    "Chitwan is best in winter.\nCustomer: anything else?\nMore leaked dialogue",
			expected: "Chitwan is best in winter.",
		},
		{
			name:     "empty_input_returns_fallback",
			input:    "",
			expected: llm.FallbackReply,
		},
		{
			name:     "whitespace_only_returns_fallback",
			input:    "   \n\t  ",
			expected: llm.FallbackReply,
		},
		{
			name:     "pure_prompt_leak_returns_fallback",
			input:    llm.SystemPrompt,
			expected: llm.FallbackReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, llm.Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Kathmandu is a wonderful destination.",
		llm.SystemPrompt + " Visit Lumbini for a quiet trip.",
		"User: hi\nAssistant: Hello! Where would you like to travel?",
		"",
	}

	for _, input := range inputs {
		once := llm.Sanitize(input)
		assert.Equal(t, once, llm.Sanitize(once))
	}
}

func TestSanitizeNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"  ",
		llm.SystemPrompt,
		"User: x\nAssistant:",
		"Customer: leaked question",
	}

	for _, input := range inputs {
		assert.NotEmpty(t, llm.Sanitize(input))
	}
}

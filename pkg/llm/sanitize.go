package llm

import (
	"regexp"
	"strings"
)

// SystemPrompt is the fixed instructional prefix prepended to every user
// message before it is sent to the provider.
const SystemPrompt = "You are a helpful travel assistant. Your role is to give concise, accurate advice about destinations, tours and trip planning in a friendly tone."

// FallbackReply is returned whenever sanitization leaves nothing usable.
const FallbackReply = "I'm here to help with your travel questions! What would you like to know about?"

// Smaller models tend to leak the instruction prefix or the role labels of
// the prompt back into their output. The order matters: the prompt echo has
// to go first so the role-label rules see the remaining text.
var (
	promptEchoRe   = regexp.MustCompile(`(?s)You are a helpful travel assistant\..*?tone\.`)
	roleEchoRe     = regexp.MustCompile(`(?s)User:.*?Assistant:`)
	customerTailRe = regexp.MustCompile(`(?s)Customer:.*$`)
)

// Sanitize strips leaked prompt artifacts from raw model output. It is pure
// and total: any input yields either cleaned text or FallbackReply, never an
// empty string.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, SystemPrompt, "")
	s = promptEchoRe.ReplaceAllString(s, "")
	s = roleEchoRe.ReplaceAllString(s, "")
	s = customerTailRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if s == "" {
		return FallbackReply
	}
	return s
}

package service

import "context"

// NoResponseSentinel is returned when the completion endpoint answers with a
// structurally malformed or empty payload. The chat surface always gets a
// displayable string for such cases, never an error.
const NoResponseSentinel = "[No response returned from LLM]"

// AIService answers a fully assembled prompt. Each call is stateless: no
// retry, no conversation memory.
type AIService interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

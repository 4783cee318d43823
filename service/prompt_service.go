package service

import (
	"fmt"
	"strings"

	"github.com/docqa/pdfchat-be/types"
)

const promptTemplate = `You are a helpful assistant. Use the following document content to answer the question.

Document content:
"""
%s
"""

Question:
%s

Answer:
`

// PromptBuilder assembles the instruction + excerpt + question string sent to
// the model. Truncation takes the first maxCorpusChars runes of the corpus,
// no ranking of passages.
type PromptBuilder struct {
	maxCorpusChars int
}

func NewPromptBuilder(maxCorpusChars int) *PromptBuilder {
	if maxCorpusChars <= 0 {
		maxCorpusChars = 4000
	}
	return &PromptBuilder{
		maxCorpusChars: maxCorpusChars,
	}
}

// Build rejects empty inputs and embeds the question verbatim. Same corpus
// and limit always produce the same excerpt.
func (b *PromptBuilder) Build(corpus string, question string) (string, error) {
	if strings.TrimSpace(corpus) == "" {
		return "", types.NewValidationError("document content is empty")
	}
	if strings.TrimSpace(question) == "" {
		return "", types.NewValidationError("question is empty")
	}
	return fmt.Sprintf(promptTemplate, b.Truncate(corpus), question), nil
}

// Truncate is exported so callers can reason about the excerpt on its own.
// It is idempotent: truncating an already truncated corpus changes nothing.
func (b *PromptBuilder) Truncate(corpus string) string {
	runes := []rune(corpus)
	if len(runes) <= b.maxCorpusChars {
		return corpus
	}
	return string(runes[:b.maxCorpusChars])
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/docqa/pdfchat-be/types"
	"github.com/sashabaranov/go-openai"
)

var systemMessageTutorAssistant = openai.ChatCompletionMessage{
	Role:    openai.ChatMessageRoleSystem,
	Content: "You are an expert AI tutor assistant.",
}

// OpenAIService talks to any OpenAI-compatible completion endpoint; the
// default deployment points it at Groq.
type OpenAIService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIService(baseURL string, apiKey, model string, timeout time.Duration) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	client := openai.NewClientWithConfig(config)
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIService{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// Answer issues a single synchronous completion call. Transport failures and
// non-success statuses surface as UpstreamError; a present-but-empty response
// degrades to the sentinel string instead.
func (s *OpenAIService) Answer(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Messages: []openai.ChatCompletionMessage{
				systemMessageTutorAssistant,
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Model:       s.model,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", types.NewUpstreamError("chat completion", err)
	}

	if len(resp.Choices) == 0 {
		return NoResponseSentinel, nil
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return NoResponseSentinel, nil
	}
	return reply, nil
}

package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/docqa/pdfchat-be/types"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService is the alternative answer backend. Multiple API keys may be
// configured; a failed call rotates to the next key before giving up.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	model      *genai.GenerativeModel
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}
	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	if s.client != nil {
		s.client.Close()
	}
	s.client = client
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemMessageTutorAssistant.Content)},
	}
	s.model = model
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	s.mu.Unlock()
	return s.initClient()
}

// currentModel snapshots the model under the lock; rotation swaps the
// client and model fields concurrently with in-flight Answer calls.
func (s *GeminiService) currentModel() *genai.GenerativeModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

func (s *GeminiService) Answer(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < len(s.apiKeys); attempt++ {
		resp, err := s.currentModel().GenerateContent(ctx, genai.Text(prompt))
		if err == nil {
			return replyFromCandidates(resp), nil
		}
		lastErr = err
		log.Printf("Gemini call failed, rotating API key: %v", err)
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", types.NewUpstreamError("gemini client", rerr)
		}
	}
	return "", types.NewUpstreamError("gemini completion", lastErr)
}

func replyFromCandidates(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return NoResponseSentinel
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return NoResponseSentinel
	}
	return reply
}

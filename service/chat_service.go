package service

import (
	"context"
	"strings"

	"github.com/docqa/pdfchat-be/repository"
)

// NoExtractableTextMessage is what the user sees when a document has no
// usable text layer. It rides a normal 200 response, not an error.
const NoExtractableTextMessage = "This PDF does not contain extractable text."

// minUsefulTextLength is the shortest extracted text worth prompting with.
const minUsefulTextLength = 10

// ChatService answers a question about one uploaded document. Only the
// latest question reaches the model; prior turns live in the client.
type ChatService struct {
	uploadRepo    repository.UploadRepo
	promptBuilder *PromptBuilder
	aiService     AIService
}

func NewChatService(uploadRepo repository.UploadRepo, promptBuilder *PromptBuilder, aiService AIService) *ChatService {
	return &ChatService{
		uploadRepo:    uploadRepo,
		promptBuilder: promptBuilder,
		aiService:     aiService,
	}
}

// Ask fetches the record, short-circuits documents without useful text, and
// otherwise relays the assembled prompt to the model.
func (s *ChatService) Ask(ctx context.Context, pdfID string, query string) (string, error) {
	record, err := s.uploadRepo.GetUpload(ctx, pdfID)
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(record.ExtractedText)) < minUsefulTextLength {
		return NoExtractableTextMessage, nil
	}

	prompt, err := s.promptBuilder.Build(record.ExtractedText, query)
	if err != nil {
		return "", err
	}

	return s.aiService.Answer(ctx, prompt)
}

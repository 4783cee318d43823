package service

import (
	"context"
	"log"

	"github.com/docqa/pdfchat-be/repository"
	"github.com/docqa/pdfchat-be/types"
)

// ExtractService runs the stored-file → plain-text step of the pipeline and
// writes the result back onto the upload record.
type ExtractService struct {
	uploadRepo repository.UploadRepo
	storage    StorageService
	pdfService *PDFService
}

func NewExtractService(uploadRepo repository.UploadRepo, storage StorageService, pdfService *PDFService) *ExtractService {
	return &ExtractService{
		uploadRepo: uploadRepo,
		storage:    storage,
		pdfService: pdfService,
	}
}

// Extract fetches the record's file, extracts its text and stores it on the
// record. Empty text is stored as-is; reporting "no extractable text" is the
// chat surface's job. Returns the stored text length.
func (s *ExtractService) Extract(ctx context.Context, pdfID string) (int, error) {
	record, err := s.uploadRepo.GetUpload(ctx, pdfID)
	if err != nil {
		return 0, err
	}
	if record.URL == "" {
		return 0, types.NewValidationError("PDF URL missing")
	}

	data, err := s.storage.FetchFile(ctx, record.URL)
	if err != nil {
		return 0, err
	}
	log.Printf("Fetched PDF %s, %d bytes", pdfID, len(data))

	text, err := s.pdfService.ExtractText(data)
	if err != nil {
		return 0, types.NewUpstreamError("extract text", err)
	}

	if err := s.uploadRepo.UpdateExtractedText(ctx, pdfID, text); err != nil {
		return 0, err
	}
	return len(text), nil
}

package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/docqa/pdfchat-be/repository"
	"github.com/docqa/pdfchat-be/types"
)

const maxUploadSize = 10 << 20 // 10MB

// FileService handles the upload hop: file bytes to blob storage, then a
// metadata record pointing at the stored URL. Extraction is a separate,
// later step; the record is queryable before any text exists.
type FileService struct {
	storage    StorageService
	uploadRepo repository.UploadRepo
}

func NewFileService(storage StorageService, uploadRepo repository.UploadRepo) *FileService {
	return &FileService{
		storage:    storage,
		uploadRepo: uploadRepo,
	}
}

func (s *FileService) UploadFile(ctx context.Context, userID string, file *multipart.FileHeader) (*types.UploadRecord, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, types.NewValidationError("unsupported file type: %s", ext)
	}
	if file.Size > maxUploadSize {
		return nil, types.NewValidationError("file too large")
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return s.UploadBytes(ctx, userID, file.Filename, data)
}

// UploadBytes is the transport-independent path, shared with the CLI.
func (s *FileService) UploadBytes(ctx context.Context, userID string, filename string, data []byte) (*types.UploadRecord, error) {
	url, err := s.storage.SaveFile(ctx, filename, "application/pdf", data)
	if err != nil {
		return nil, err
	}

	record := &types.UploadRecord{
		URL:      url,
		UserID:   userID,
		Filename: filename,
	}
	if _, err := s.uploadRepo.CreateUpload(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

package service

import (
	"context"
	"testing"

	"github.com/docqa/pdfchat-be/testutil"
)

func TestUploadBytesStoresAndRecords(t *testing.T) {
	repo := newMemUploadRepo()
	storage := &fakeStorage{saveURL: "http://storage.example.com/uploads/abc.pdf"}
	s := NewFileService(storage, repo)

	record, err := s.UploadBytes(context.Background(), "u1", "report.pdf", testutil.MakePDF("Report body."))
	if err != nil {
		t.Fatalf("UploadBytes: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected a record id")
	}
	if record.URL != "http://storage.example.com/uploads/abc.pdf" {
		t.Fatalf("unexpected url: %q", record.URL)
	}

	stored, err := repo.GetUpload(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("record not queryable after upload: %v", err)
	}
	if stored.UserID != "u1" || stored.Filename != "report.pdf" {
		t.Fatalf("record fields not persisted: %+v", stored)
	}
	if stored.ExtractedText != "" {
		t.Fatal("new uploads must start with empty text")
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/docqa/pdfchat-be/types"
)

func TestSaveMetadataMissingField(t *testing.T) {
	router := newTestRouter(newMemUploadRepo(), &fakeAI{})

	cases := []string{
		`{"userId": "u1", "fileName": "a.pdf"}`,
		`{"url": "http://example.com/a.pdf", "fileName": "a.pdf"}`,
		`{"url": "http://example.com/a.pdf", "userId": "u1"}`,
	}
	for _, body := range cases {
		resp := postJSON(router, "/upload-metadata", body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.Code)
		}
	}
}

func TestSaveMetadataCreatesRecord(t *testing.T) {
	repo := newMemUploadRepo()
	router := newTestRouter(repo, &fakeAI{})

	resp := postJSON(router, "/upload-metadata",
		`{"url": "http://example.com/a.pdf", "userId": "u1", "fileName": "a.pdf"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body types.SaveMetadataResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.DocumentID == "" {
		t.Fatalf("unexpected response: %+v", body)
	}

	record, err := repo.GetUpload(context.Background(), body.DocumentID)
	if err != nil {
		t.Fatalf("record not queryable right after creation: %v", err)
	}
	if record.URL != "http://example.com/a.pdf" || record.UserID != "u1" || record.Filename != "a.pdf" {
		t.Fatalf("record fields not persisted: %+v", record)
	}
	if record.ExtractedText != "" {
		t.Fatal("new records must start with empty text")
	}
}

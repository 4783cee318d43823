package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docqa/pdfchat-be/service"
	"github.com/docqa/pdfchat-be/testutil"
	"github.com/docqa/pdfchat-be/types"
)

func servePDF(t *testing.T, data []byte) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/doc.pdf"
}

func TestExtractMissingID(t *testing.T) {
	router := newTestRouter(newMemUploadRepo(), &fakeAI{})

	resp := postJSON(router, "/extract", `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestExtractUnknownRecord(t *testing.T) {
	router := newTestRouter(newMemUploadRepo(), &fakeAI{})

	resp := postJSON(router, "/extract", `{"pdfId": "missing"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestExtractRecordWithoutURL(t *testing.T) {
	repo := newMemUploadRepo()
	id, _ := repo.CreateUpload(context.Background(), &types.UploadRecord{})
	router := newTestRouter(repo, &fakeAI{})

	resp := postJSON(router, "/extract", `{"pdfId": "`+id+`"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestExtractFetchFailure(t *testing.T) {
	repo := newMemUploadRepo()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	id, _ := repo.CreateUpload(context.Background(), &types.UploadRecord{URL: srv.URL})
	router := newTestRouter(repo, &fakeAI{})

	resp := postJSON(router, "/extract", `{"pdfId": "`+id+`"}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

// Full pipeline: save metadata, extract, then chat about the document.
func TestUploadExtractChatPipeline(t *testing.T) {
	repo := newMemUploadRepo()
	ai := &fakeAI{reply: "The report covers fiscal year 2024."}
	router := newTestRouter(repo, ai)

	url := servePDF(t, testutil.MakePDF(
		"Annual report for fiscal year 2024.",
		"Revenue grew by twelve percent.",
	))

	// 1. metadata record, no text yet
	resp := postJSON(router, "/upload-metadata",
		`{"url": "`+url+`", "userId": "u1", "fileName": "report.pdf"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("upload-metadata: expected 200, got %d", resp.Code)
	}
	var meta types.SaveMetadataResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	record, _ := repo.GetUpload(context.Background(), meta.DocumentID)
	if record.ExtractedText != "" {
		t.Fatal("text must be empty before extraction")
	}

	// 2. extract
	resp = postJSON(router, "/extract", `{"pdfId": "`+meta.DocumentID+`"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("extract: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var extract types.ExtractResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &extract); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if extract.TextLength == 0 {
		t.Fatal("expected non-zero text length")
	}
	record, _ = repo.GetUpload(context.Background(), meta.DocumentID)
	if !strings.HasPrefix(record.ExtractedText, "Annual report") {
		t.Fatalf("record text should start with page 1 content: %q", record.ExtractedText)
	}

	// 3. chat
	resp = postJSON(router, "/chat", `{"query": "What period does the report cover?", "pdfId": "`+meta.DocumentID+`"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d", resp.Code)
	}
	var chat types.ChatResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &chat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if chat.Response == "" || chat.Response == service.NoResponseSentinel || chat.Response == service.NoExtractableTextMessage {
		t.Fatalf("expected a real answer, got %q", chat.Response)
	}
	if ai.calls != 1 {
		t.Fatalf("expected exactly one LLM call, got %d", ai.calls)
	}
}

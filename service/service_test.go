package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/docqa/pdfchat-be/types"
)

// memUploadRepo is an in-memory UploadRepo for tests.
type memUploadRepo struct {
	mu      sync.Mutex
	nextID  int
	records map[string]*types.UploadRecord
}

func newMemUploadRepo() *memUploadRepo {
	return &memUploadRepo{records: make(map[string]*types.UploadRecord)}
}

func (r *memUploadRepo) CreateUpload(ctx context.Context, record *types.UploadRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	record.ID = fmt.Sprintf("id-%d", r.nextID)
	copied := *record
	r.records[record.ID] = &copied
	return record.ID, nil
}

func (r *memUploadRepo) GetUpload(ctx context.Context, id string) (*types.UploadRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *memUploadRepo) UpdateExtractedText(ctx context.Context, id string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return types.ErrNotFound
	}
	record.ExtractedText = text
	return nil
}

// fakeAI records the prompt it was given and returns a canned reply.
type fakeAI struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeAI) Answer(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeStorage serves canned bytes for any URL.
type fakeStorage struct {
	data    []byte
	saveURL string
	err     error
}

func (f *fakeStorage) SaveFile(ctx context.Context, filename string, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.saveURL, nil
}

func (f *fakeStorage) FetchFile(ctx context.Context, url string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

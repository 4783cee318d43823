package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/docqa/pdfchat-be/service"
	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

// memUploadRepo is an in-memory UploadRepo for handler tests.
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

type fakeAI struct {
	reply string
	calls int
}

func (f *fakeAI) Answer(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, nil
}

// httpStorage fetches over plain HTTP, like production; saves return a
// canned URL.
type httpStorage struct {
	saveURL string
}

func (s *httpStorage) SaveFile(ctx context.Context, filename string, contentType string, data []byte) (string, error) {
	if s.saveURL == "" {
		return "", types.NewUpstreamError("storage put", fmt.Errorf("no save url configured"))
	}
	return s.saveURL, nil
}

func (s *httpStorage) FetchFile(ctx context.Context, url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, types.NewUpstreamError("fetch file", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, types.NewUpstreamError("fetch file", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return io.ReadAll(resp.Body)
}

// newTestRouter wires the handlers the same way cmd/start.go does.
func newTestRouter(repo *memUploadRepo, ai service.AIService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	storage := &httpStorage{saveURL: "http://storage.example.com/uploads/test.pdf"}
	pdfService := service.NewPDFService()
	promptBuilder := service.NewPromptBuilder(4000)
	extractService := service.NewExtractService(repo, storage, pdfService)
	chatService := service.NewChatService(repo, promptBuilder, ai)
	fileService := service.NewFileService(storage, repo)

	router := gin.New()
	router.POST("/upload", NewUploadHandler(fileService).HandleUpload)
	router.POST("/upload-metadata", NewMetadataHandler(repo).HandleSaveMetadata)
	router.POST("/extract", NewExtractHandler(extractService).HandleExtract)
	router.GET("/pdf/:pdfId", NewPDFHandler(repo).HandleGetPDF)
	router.POST("/chat", NewChatHandler(chatService).HandleChat)
	return router
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/docqa/pdfchat-be/config"
	"github.com/docqa/pdfchat-be/types"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService persists raw file bytes to durable blob storage and hands
// back a public URL. Fetching goes over plain HTTP because a record's URL may
// point at any publicly reachable host, not only our own bucket.
type StorageService interface {
	SaveFile(ctx context.Context, filename string, contentType string, data []byte) (string, error)
	FetchFile(ctx context.Context, url string) ([]byte, error)
}

type minioStorage struct {
	client     *minio.Client
	bucket     string
	endpoint   string
	scheme     string
	httpClient *http.Client
}

func NewMinioStorage(cfg config.StorageConfig) (StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &minioStorage{
		client:     client,
		bucket:     cfg.Bucket,
		endpoint:   cfg.Endpoint,
		scheme:     scheme,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *minioStorage) SaveFile(ctx context.Context, filename string, contentType string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	objectKey := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: map[string]string{"filename": filename},
		})
	if err != nil {
		return "", types.NewUpstreamError("storage put", err)
	}

	return fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.endpoint, s.bucket, objectKey), nil
}

func (s *minioStorage) FetchFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.NewUpstreamError("fetch file", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, types.NewUpstreamError("fetch file", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewUpstreamError("fetch file", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewUpstreamError("fetch file", err)
	}
	return data, nil
}

package service

import (
	"NoteShare/config"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// MinioStorage 自建 MinIO / S3 兼容存储
type MinioStorage struct {
	Client     *minio.Client
	BucketName string
	BaseURL    string
}

var _ IStorageService = (*MinioStorage)(nil)

func NewMinioStorage(client *minio.Client, cfg *config.MinioConfig) *MinioStorage {
	base := cfg.PublicBaseURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &MinioStorage{
		Client:     client,
		BucketName: cfg.Bucket,
		BaseURL:    base,
	}
}

func (s *MinioStorage) Put(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) error {
	_, err := s.Client.PutObject(ctx, s.BucketName, objectKey, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStorage) Delete(ctx context.Context, objectKey string) error {
	return s.Client.RemoveObject(ctx, s.BucketName, objectKey, minio.RemoveObjectOptions{})
}

func (s *MinioStorage) PublicURL(objectKey string) string {
	return objectURL(s.BaseURL, objectKey)
}

func (s *MinioStorage) SignURL(ctx context.Context, objectKey string, expire time.Duration) (string, error) {
	u, err := s.Client.PresignedGetObject(ctx, s.BucketName, objectKey, expire, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

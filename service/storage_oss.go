package service

import (
	"NoteShare/config"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

// OssStorage 阿里云 OSS
type OssStorage struct {
	Client     *oss.Client
	BucketName string
	BaseURL    string
}

var _ IStorageService = (*OssStorage)(nil)

func NewOssStorage(client *oss.Client, cfg *config.OssConfig) *OssStorage {
	base := cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint)
	}
	return &OssStorage{
		Client:     client,
		BucketName: cfg.Bucket,
		BaseURL:    base,
	}
}

// Put 上传 Reader（HTTP 上传场景）
func (s *OssStorage) Put(
	ctx context.Context,
	objectKey string,
	body io.Reader,
	size int64,
	contentType string,
) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:        oss.Ptr(s.BucketName),
		Key:           oss.Ptr(objectKey),
		ContentType:   oss.Ptr(contentType),
		ContentLength: oss.Ptr(size),
		Body:          body,
	})
	return err
}

// Delete 删除对象
func (s *OssStorage) Delete(
	ctx context.Context,
	objectKey string,
) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func (s *OssStorage) PublicURL(objectKey string) string {
	return objectURL(s.BaseURL, objectKey)
}

// SignURL 生成临时下载 URL
func (s *OssStorage) SignURL(
	ctx context.Context,
	objectKey string,
	expire time.Duration,
) (string, error) {
	result, err := s.Client.Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(expire))
	if err != nil {
		return "", err
	}

	return result.URL, nil
}

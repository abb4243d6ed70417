package service

import (
	"NoteShare/config"
	miniox "NoteShare/pkg/minio"
	ossx "NoteShare/pkg/oss"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

var ErrSignNotSupported = errors.New("storage driver does not support signed urls")

type IStorageService interface {
	// Put 上传流
	Put(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) error

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// PublicURL 对象的公开访问地址
	PublicURL(objectKey string) string

	// SignURL 生成临时下载 URL
	SignURL(ctx context.Context, objectKey string, expire time.Duration) (string, error)
}

// NewStorageService 按 storage.driver 选择存储后端
func NewStorageService(cfg *config.Config) (IStorageService, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverOss:
		if cfg.Oss == nil {
			return nil, errors.New("storage driver oss requires oss config")
		}
		return NewOssStorage(ossx.NewClient(cfg.Oss), cfg.Oss), nil
	case config.StorageDriverMinio:
		if cfg.Minio == nil {
			return nil, errors.New("storage driver minio requires minio config")
		}
		client, err := miniox.NewClient(cfg.Minio)
		if err != nil {
			return nil, err
		}
		return NewMinioStorage(client, cfg.Minio), nil
	case config.StorageDriverMemory:
		return NewMemoryStorage("memory://notes"), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// objectURL 按路径段转义后拼到 base 上，文件名里可能有空格或中文
func objectURL(base, objectKey string) string {
	segments := strings.Split(objectKey, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}

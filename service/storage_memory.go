package service

import (
	"context"
	"io"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// MemoryStorage 本地开发用，进程退出即丢失
type MemoryStorage struct {
	objects cmap.ConcurrentMap[string, []byte]
	baseURL string
}

var _ IStorageService = (*MemoryStorage)(nil)

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{
		objects: cmap.New[[]byte](),
		baseURL: baseURL,
	}
}

func (s *MemoryStorage) Put(ctx context.Context, objectKey string, body io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects.Set(objectKey, data)
	return nil
}

// Delete 对象不存在时也返回成功，与 OSS / MinIO 行为一致
func (s *MemoryStorage) Delete(ctx context.Context, objectKey string) error {
	s.objects.Remove(objectKey)
	return nil
}

func (s *MemoryStorage) PublicURL(objectKey string) string {
	return objectURL(s.baseURL, objectKey)
}

func (s *MemoryStorage) SignURL(ctx context.Context, objectKey string, expire time.Duration) (string, error) {
	return "", ErrSignNotSupported
}

// Get 读取对象内容
func (s *MemoryStorage) Get(objectKey string) ([]byte, bool) {
	return s.objects.Get(objectKey)
}

func (s *MemoryStorage) Len() int {
	return s.objects.Count()
}

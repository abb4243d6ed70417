package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	downloadKey         = "note:downloads"
	downloadFlushingKey = "note:downloads:flushing"
)

// DownloadStorage 下载计数先累加在 redis hash 里，由后台任务批量回写 mysql
type DownloadStorage struct {
	redis *redis.Client
}

func NewDownloadStorage(rds *redis.Client) *DownloadStorage {
	return &DownloadStorage{rds}
}

// Incr 笔记下载数 +1
func (d *DownloadStorage) Incr(ctx context.Context, noteID uint64) error {
	return d.redis.HIncrBy(ctx, downloadKey, strconv.FormatUint(noteID, 10), 1).Err()
}

// Pending 尚未回写的增量（包括正在回写中的部分）
func (d *DownloadStorage) Pending(ctx context.Context, noteID uint64) (int64, error) {
	field := strconv.FormatUint(noteID, 10)
	pipe := d.redis.Pipeline()
	cur := pipe.HGet(ctx, downloadKey, field)
	flushing := pipe.HGet(ctx, downloadFlushingKey, field)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return 0, err
	}
	a, _ := cur.Int64()
	b, _ := flushing.Int64()
	return a + b, nil
}

// Take 把当前累计的计数切到 flushing key 上并返回
// 上一次回写没完成时（进程退出等），先返回 flushing key 里剩下的部分
func (d *DownloadStorage) Take(ctx context.Context) (map[uint64]int64, error) {
	n, err := d.redis.Exists(ctx, downloadFlushingKey).Result()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := d.redis.Rename(ctx, downloadKey, downloadFlushingKey).Err(); err != nil {
			if strings.Contains(err.Error(), "no such key") {
				return map[uint64]int64{}, nil
			}
			return nil, err
		}
	}

	items, err := d.redis.HGetAll(ctx, downloadFlushingKey).Result()
	if err != nil {
		return nil, err
	}
	result := make(map[uint64]int64, len(items))
	for k, v := range items {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		delta, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		result[id] = delta
	}
	return result, nil
}

// Forget 笔记删除后丢弃它尚未回写的计数
func (d *DownloadStorage) Forget(ctx context.Context, noteID uint64) error {
	field := strconv.FormatUint(noteID, 10)
	pipe := d.redis.TxPipeline()
	pipe.HDel(ctx, downloadKey, field)
	pipe.HDel(ctx, downloadFlushingKey, field)
	_, err := pipe.Exec(ctx)
	return err
}

// Done 某个笔记的增量已落库
func (d *DownloadStorage) Done(ctx context.Context, noteID uint64) error {
	return d.redis.HDel(ctx, downloadFlushingKey, strconv.FormatUint(noteID, 10)).Err()
}

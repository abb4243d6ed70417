package service

import (
	"NoteShare/config"
	"NoteShare/pkg/log"
	"context"
	"time"

	"go.uber.org/zap"
)

// DownloadSync 定时把 redis 中累计的下载数回写 note_stats
type DownloadSync struct {
	Downloads IDownloadCounter
	StatsDAO  IStatsRepo
	App       *config.App
}

// Run 阻塞直到 ctx 结束，退出前再回写一次
func (s *DownloadSync) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.App.DownloadFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if _, err := s.Flush(flushCtx); err != nil {
				log.L.Warn("final download flush failed", zap.Error(err))
			}
			cancel()
			return nil
		case <-ticker.C:
			if _, err := s.Flush(ctx); err != nil {
				log.L.Warn("download flush failed", zap.Error(err))
			}
		}
	}
}

// Flush 回写一轮，返回成功落库的笔记数
// 单条失败时保留在 flushing key 中，下一轮重试
func (s *DownloadSync) Flush(ctx context.Context) (int, error) {
	items, err := s.Downloads.Take(ctx)
	if err != nil {
		return 0, storeErr("take download counts", err)
	}

	var (
		flushed  int
		firstErr error
	)
	for noteID, delta := range items {
		if err := s.StatsDAO.IncrDownloadCount(ctx, noteID, delta); err != nil {
			if firstErr == nil {
				firstErr = storeErr("incr download count", err)
			}
			continue
		}
		if err := s.Downloads.Done(ctx, noteID); err != nil {
			log.L.Warn("ack download count failed", zap.Uint64("noteId", noteID), zap.Error(err))
		}
		flushed++
	}
	if flushed > 0 {
		log.L.Info("download counts flushed", zap.Int("notes", flushed))
	}
	return flushed, firstErr
}

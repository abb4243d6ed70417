package service

import (
	"NoteShare/dao"
	"NoteShare/dao/cache"
	"NoteShare/models"
	"context"
)

// 下面的接口由 dao / cache 实现，测试里替换成内存版本

type INoteRepo interface {
	Create(ctx context.Context, note *models.Note) error
	FindByID(ctx context.Context, id uint64) (*models.Note, error)
	List(ctx context.Context, q dao.NoteQuery) ([]*models.Note, int64, error)
	DeleteWithRelations(ctx context.Context, noteID uint64) error
}

type IRatingRepo interface {
	GetByNoteUser(ctx context.Context, noteID uint64, userID uint64) (*models.Rating, error)
	Upsert(ctx context.Context, rating *models.Rating) error
	ValuesByNoteIDs(ctx context.Context, noteIDs []uint64) (map[uint64][]int, error)
	UserValues(ctx context.Context, userID uint64, noteIDs []uint64) (map[uint64]int, error)
}

type IStatsRepo interface {
	IncrDownloadCount(ctx context.Context, noteID uint64, delta int64) error
	DownloadCounts(ctx context.Context, noteIDs []uint64) (map[uint64]int64, error)
}

type IDownloadCounter interface {
	Incr(ctx context.Context, noteID uint64) error
	Pending(ctx context.Context, noteID uint64) (int64, error)
	Take(ctx context.Context) (map[uint64]int64, error)
	Done(ctx context.Context, noteID uint64) error
	Forget(ctx context.Context, noteID uint64) error
}

var (
	_ INoteRepo   = (*dao.NoteDAO)(nil)
	_ IRatingRepo = (*dao.RatingDAO)(nil)
	_ IStatsRepo  = (*dao.NoteStatsDAO)(nil)

	_ IDownloadCounter = (*cache.DownloadStorage)(nil)
)

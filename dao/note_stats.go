package dao

import (
	"NoteShare/models"
	"context"

	"gorm.io/gorm"
)

type NoteStatsDAO struct {
	Repo[models.NoteStats]
}

func NewNoteStatsDAO(db *gorm.DB) *NoteStatsDAO {
	return &NoteStatsDAO{Repo: NewRepo[models.NoteStats](db)}
}

// IncrDownloadCount 下载计数增减，避免负数
func (d *NoteStatsDAO) IncrDownloadCount(ctx context.Context, noteID uint64, delta int64) error {
	return d.Db.WithContext(ctx).Exec(
		"INSERT INTO note_stats (note_id, download_count, updated_at) VALUES (?, GREATEST(?, 0), NOW()) "+
			"ON DUPLICATE KEY UPDATE download_count = GREATEST(download_count + ?, 0), updated_at = NOW()",
		noteID, delta, delta,
	).Error
}

// DownloadCounts 批量查询下载数，没有统计行的笔记不出现在结果里
func (d *NoteStatsDAO) DownloadCounts(ctx context.Context, noteIDs []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(noteIDs))
	if len(noteIDs) == 0 {
		return result, nil
	}
	var rows []models.NoteStats
	err := d.Db.WithContext(ctx).Where("note_id IN ?", noteIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.NoteID] = r.DownloadCount
	}
	return result, nil
}

package models

import "time"

// NoteStats 笔记统计
// 对应表 note_stats，只存无法由其他表推导出的计数
type NoteStats struct {
	NoteID        uint64    `gorm:"column:note_id;primaryKey" json:"note_id"`
	DownloadCount int64     `gorm:"column:download_count;default:0" json:"download_count"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (NoteStats) TableName() string {
	return "note_stats"
}

package models

import "time"

// Rating 用户对笔记的评分
// 对应表 ratings
// 唯一键: note_id + user_id
type Rating struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	NoteID    uint64    `gorm:"column:note_id;not null;uniqueIndex:uniq_note_user,priority:1" json:"note_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uniq_note_user,priority:2" json:"user_id"`
	Value     int       `gorm:"column:value;type:tinyint;not null" json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }

// NoteRating 批量计算聚合时只取这两列
type NoteRating struct {
	NoteID uint64 `gorm:"column:note_id"`
	Value  int    `gorm:"column:value"`
}

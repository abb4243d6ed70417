package models

import (
	"time"
)

// Note 笔记元数据，文件本体存放在对象存储中
type Note struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(100);not null;default:'';index:idx_title" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	FilePath    string    `gorm:"column:file_path;type:varchar(512);not null" json:"file_path"`
	FileURL     string    `gorm:"column:file_url;type:varchar(1024);not null" json:"file_url"`
	FileName    string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	FileType    string    `gorm:"column:file_type;type:varchar(128);not null;default:'unknown'" json:"file_type"`
	FileSize    string    `gorm:"column:file_size;type:varchar(32);not null" json:"file_size"`
	UploaderID  *uint64   `gorm:"column:uploader_id;index:idx_uploader_created,priority:1" json:"uploader_id"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_created_at;index:idx_uploader_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (n Note) TableName() string {
	return "notes"
}

// OwnedBy 匿名上传的笔记不属于任何人
func (n *Note) OwnedBy(userID uint64) bool {
	return userID != 0 && n.UploaderID != nil && *n.UploaderID == userID
}

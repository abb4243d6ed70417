package types

import (
	"time"
)

// Pagination 分页常量
const (
	DefaultPage     int = 1   // 默认页码
	DefaultPageSize int = 20  // 默认每页数量
	MaxPageSize     int = 100 // 每页上限
)

// NoteItem 列表 / 详情里的一条笔记，评分聚合在读取时计算
type NoteItem struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	FileURL       string    `json:"file_url"`
	FileName      string    `json:"file_name"`
	FileType      string    `json:"file_type"`
	FileSize      string    `json:"file_size"`
	UploaderID    *uint64   `json:"uploader_id"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating *float64  `json:"average_rating"`
	RatingsCount  int       `json:"ratings_count"`
	DownloadCount int64     `json:"download_count"`
	UserRating    *int      `json:"user_rating,omitempty"` // 当前登录用户的评分
}

// ListNotesRequest 笔记列表 / 搜索
type ListNotesRequest struct {
	Query    string `form:"q"`         // 标题关键字
	Page     int    `form:"page"`      // 从 1 开始
	PageSize int    `form:"page_size"` // 默认 20，最大 100
}

type ListNotesRep struct {
	Notes    []*NoteItem `json:"notes"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Normalize 补齐分页参数
func (r *ListNotesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	if r.PageSize > MaxPageSize {
		r.PageSize = MaxPageSize
	}
}

type DeleteNoteResponse struct {
	NoteID uint64 `json:"note_id"`
}

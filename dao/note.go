package dao

import (
	"NoteShare/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// NoteQuery 列表查询条件
type NoteQuery struct {
	Title      string  // 标题模糊匹配，空表示不过滤
	UploaderID *uint64 // 只看某个上传者
	Limit      int
	Offset     int
}

// Create 创建笔记
func (d *NoteDAO) Create(ctx context.Context, note *models.Note) error {
	return d.Db.WithContext(ctx).Create(note).Error
}

// List 按创建时间倒序分页查询，同时返回总数
func (d *NoteDAO) List(ctx context.Context, q NoteQuery) ([]*models.Note, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Note{})
	if q.Title != "" {
		query = query.Where("title LIKE ?", "%"+escapeLike(q.Title)+"%")
	}
	if q.UploaderID != nil {
		query = query.Where("uploader_id = ?", *q.UploaderID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notes := make([]*models.Note, 0)
	if total == 0 {
		return notes, 0, nil
	}
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&notes).Error
	return notes, total, err
}

// DeleteWithRelations 删除笔记以及它的评分、统计
func (d *NoteDAO) DeleteWithRelations(ctx context.Context, noteID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", noteID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", noteID).Delete(&models.NoteStats{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", noteID).Delete(&models.Note{}).Error
	})
}

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}

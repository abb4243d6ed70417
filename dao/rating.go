package dao

import (
	"NoteShare/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingDAO struct {
	Repo[models.Rating]
}

func NewRatingDAO(db *gorm.DB) *RatingDAO {
	return &RatingDAO{Repo: NewRepo[models.Rating](db)}
}

// GetByNoteUser 查询指定用户对指定笔记的评分，不存在时返回 nil, nil
func (d *RatingDAO) GetByNoteUser(ctx context.Context, noteID uint64, userID uint64) (*models.Rating, error) {
	var item models.Rating
	err := d.Db.WithContext(ctx).Where("note_id = ? AND user_id = ?", noteID, userID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// Upsert 依赖 uniq_note_user 唯一索引，一条语句完成插入或更新
func (d *RatingDAO) Upsert(ctx context.Context, rating *models.Rating) error {
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "note_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

// ValuesByNoteIDs 批量取出评分值，按笔记分组
func (d *RatingDAO) ValuesByNoteIDs(ctx context.Context, noteIDs []uint64) (map[uint64][]int, error) {
	result := make(map[uint64][]int, len(noteIDs))
	if len(noteIDs) == 0 {
		return result, nil
	}
	var rows []models.NoteRating
	err := d.Db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("note_id", "value").
		Where("note_id IN ?", noteIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.NoteID] = append(result[r.NoteID], r.Value)
	}
	return result, nil
}

// UserValues 某个用户在这些笔记上的评分
func (d *RatingDAO) UserValues(ctx context.Context, userID uint64, noteIDs []uint64) (map[uint64]int, error) {
	result := make(map[uint64]int)
	if userID == 0 || len(noteIDs) == 0 {
		return result, nil
	}
	var rows []models.NoteRating
	err := d.Db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("note_id", "value").
		Where("user_id = ? AND note_id IN ?", userID, noteIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.NoteID] = r.Value
	}
	return result, nil
}

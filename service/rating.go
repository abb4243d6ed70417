package service

import (
	"NoteShare/models"
	"NoteShare/pkg/snowflake"
	"context"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var _ IRatingService = (*RatingService)(nil)

type IRatingService interface {
	GetUserRating(ctx context.Context, noteID, userID uint64) (int, bool, error)
	RateNote(ctx context.Context, noteID, userID uint64, value int) error
	NoteAggregate(ctx context.Context, noteID uint64) (Aggregate, error)
}

type RatingService struct {
	RatingDAO IRatingRepo
	NoteDAO   INoteRepo
	Events    IEventPublisher
}

// GetUserRating 查询用户对笔记的评分，未登录或未评分时 found 为 false
func (s *RatingService) GetUserRating(ctx context.Context, noteID, userID uint64) (int, bool, error) {
	if userID == 0 {
		return 0, false, nil
	}
	r, err := s.RatingDAO.GetByNoteUser(ctx, noteID, userID)
	if err != nil {
		return 0, false, storeErr("get user rating", err)
	}
	if r == nil {
		return 0, false, nil
	}
	return r.Value, true, nil
}

// RateNote 每个用户对每篇笔记只保留一条评分，重复评分覆盖旧值
func (s *RatingService) RateNote(ctx context.Context, noteID, userID uint64, value int) error {
	if userID == 0 {
		return ErrAuthRequired
	}
	if value < MinRating || value > MaxRating {
		return &ValidationError{Field: "rating", Msg: "must be an integer between 1 and 5"}
	}

	// 校验笔记存在
	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		return storeErr("find note", err)
	}
	if note == nil {
		return ErrNoteNotFound
	}

	now := time.Now()
	rating := &models.Rating{
		ID:        snowflake.GenID(),
		NoteID:    noteID,
		UserID:    userID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.RatingDAO.Upsert(ctx, rating); err != nil {
		return storeErr("upsert rating", err)
	}

	publish(ctx, s.Events, NoteEvent{Type: EventNoteRated, NoteID: noteID, UserID: userID, Rating: value})
	return nil
}

// NoteAggregate 单篇笔记的平均分和评分人数
func (s *RatingService) NoteAggregate(ctx context.Context, noteID uint64) (Aggregate, error) {
	values, err := s.RatingDAO.ValuesByNoteIDs(ctx, []uint64{noteID})
	if err != nil {
		return Aggregate{}, storeErr("load ratings", err)
	}
	return ComputeAggregate(values[noteID]), nil
}

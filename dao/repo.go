package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用的单表操作，具体 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindByID 主键查询，不存在时返回 nil, nil
func (r *Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

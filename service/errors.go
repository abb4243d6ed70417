package service

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired     = errors.New("authentication required")
	ErrNoteNotFound     = errors.New("note not found")
	ErrForbidden        = errors.New("only the uploader can modify this note")
	ErrUnresolvablePath = errors.New("note has no stored file path")
)

// ValidationError 参数校验失败，在任何网络调用之前返回
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// StoreError 数据库 / 对象存储 / redis 的失败，原样包装不重试
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

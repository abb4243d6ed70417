package handler

import (
	"NoteShare/pkg/log"
	"NoteShare/pkg/response"
	"NoteShare/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bizError 把 service 层错误映射为 HTTP 状态码
func bizError(c *gin.Context, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		return response.NewError(http.StatusUnauthorized, "请先登录")
	case errors.As(err, &ve):
		return response.NewError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrNoteNotFound):
		return response.NewError(http.StatusNotFound, "笔记不存在")
	case errors.Is(err, service.ErrForbidden):
		return response.NewError(http.StatusForbidden, "只有上传者可以操作该笔记")
	}

	log.L.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Any("requestId", c.Value("request_id")),
		zap.Error(err))
	return response.NewError(http.StatusInternalServerError, "服务繁忙，请稍后再试")
}

func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}

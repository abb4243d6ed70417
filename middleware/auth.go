package middleware

import (
	"NoteShare/pkg/context"
	"NoteShare/pkg/jwt"
	"NoteShare/pkg/log"
	"NoteShare/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 必须登录
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		userID, err := parseBearer(secret, authHeader)
		if err != nil {
			log.L.Debug("auth failed", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(context.CtxUserID, userID)

		c.Next()
	}
}

// OptionalAuth 有 token 时解析用户，无效或缺失按匿名处理
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if userID, err := parseBearer(secret, authHeader); err == nil {
				c.Set(context.CtxUserID, userID)
			}
		}
		c.Next()
	}
}

func parseBearer(secret []byte, authHeader string) (uint64, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errBadAuthHeader
	}
	claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, parts[1])
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

var errBadAuthHeader = &response.BizError{Code: http.StatusUnauthorized, Msg: "Authorization 格式错误"}

package handler

import (
	"NoteShare/config"
	"NoteShare/middleware"
	"NoteShare/pkg/context"
	"NoteShare/pkg/response"
	"NoteShare/service"
	"NoteShare/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Rating struct {
	RatingService service.IRatingService
	Config        *config.Config
}

func (h *Rating) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	g := r.Group("/v1/notes/:id")
	g.GET("/rating", middleware.OptionalAuth(secret), context.Wrap(h.GetUserRating))
	g.PUT("/rating", middleware.Auth(secret), context.Wrap(h.RateNote))
}

// GetUserRating 当前用户的评分，未登录或未评分返回 null
func (h *Rating) GetUserRating(c *gin.Context) error {
	noteID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	value, found, err := h.RatingService.GetUserRating(c.Request.Context(), noteID, context.OptionalUserID(c))
	if err != nil {
		return bizError(c, err)
	}
	var resp types.UserRatingResponse
	if found {
		resp.Rating = &value
	}
	response.Success(c, resp)
	return nil
}

// RateNote 评分或修改评分，返回最新聚合
func (h *Rating) RateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	noteID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.RateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	ctx := c.Request.Context()
	if err := h.RatingService.RateNote(ctx, noteID, userID, req.Rating); err != nil {
		return bizError(c, err)
	}
	agg, err := h.RatingService.NoteAggregate(ctx, noteID)
	if err != nil {
		return bizError(c, err)
	}
	response.Success(c, types.RateNoteResponse{
		Rating:        req.Rating,
		AverageRating: agg.Average,
		RatingsCount:  agg.Count,
	})
	return nil
}

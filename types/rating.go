package types

// RateNoteRequest 评分请求，取值范围在 service 层校验
type RateNoteRequest struct {
	Rating int `json:"rating"`
}

// RateNoteResponse 评分后返回最新的聚合，前端直接刷新展示
type RateNoteResponse struct {
	Rating        int      `json:"rating"`
	AverageRating *float64 `json:"average_rating"`
	RatingsCount  int      `json:"ratings_count"`
}

// UserRatingResponse 未评分时 rating 为 null
type UserRatingResponse struct {
	Rating *int `json:"rating"`
}

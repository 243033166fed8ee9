package request

type CreateReviewRequest struct {
	MovieID int64  `json:"movie_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

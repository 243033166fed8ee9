package response

import (
	"movie-review-api/internal/data/entity"
)

// CreatedAtLayout is the wire format for review timestamps (second resolution).
const CreatedAtLayout = "2006-01-02 15:04:05"

type ReviewResponse struct {
	ID             int64   `json:"id"`
	MovieID        int64   `json:"movie_id"`
	MovieTitle     string  `json:"movie_title"`
	Content        string  `json:"content"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	CreatedAt      string  `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID,
		MovieID:        review.MovieID,
		MovieTitle:     review.MovieTitle,
		Content:        review.Content,
		Sentiment:      string(review.Sentiment),
		SentimentScore: review.SentimentScore,
		CreatedAt:      review.CreatedAt.Format(CreatedAtLayout),
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}

package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// POST /api/reviews - Submit a review, classified before it is stored
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/reviews - List reviews newest-first, optional ?movie_id= filter
	r.Get("/api/reviews", reviewHandler.GetReviews)

	// GET /api/reviews/recent - Most recent reviews, optional ?limit= (default 10)
	r.Get("/api/reviews/recent", reviewHandler.GetRecentReviews)

	// DELETE /api/reviews - Clear every stored review
	r.Delete("/api/reviews", reviewHandler.DeleteAllReviews)

	// DELETE /api/reviews/{id} - Delete a single review by id
	r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)

	// DELETE /api/reviews/index/{index} - Legacy positional delete
	r.Delete("/api/reviews/index/{index}", reviewHandler.DeleteReviewByIndex)
}

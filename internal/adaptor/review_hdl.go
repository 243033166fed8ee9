package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews. The request blocks until the
// sentiment classifier returns; a classifier failure fails the submission
// with nothing persisted.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// GetReviews handles GET /api/reviews with an optional movie_id filter,
// newest-first.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	var movieID *int64
	if raw := r.URL.Query().Get("movie_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "movie_id must be an integer", nil)
			return
		}
		movieID = &id
	}

	reviews, err := h.service.GetReviews(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetRecentReviews handles GET /api/reviews/recent?limit=N (default 10).
func (h *ReviewHandler) GetRecentReviews(w http.ResponseWriter, r *http.Request) {
	limit := usecase.DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ResponseBadRequest(w, "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}

	reviews, err := h.service.GetRecentReviews(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, err, "get recent reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// DeleteAllReviews handles DELETE /api/reviews
func (h *ReviewHandler) DeleteAllReviews(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAllReviews(r.Context()); err != nil {
		h.handleServiceError(w, err, "delete all reviews")
		return
	}

	utils.ResponseSuccess(w, "All reviews deleted successfully", nil)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Review ID must be an integer", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// DeleteReviewByIndex handles DELETE /api/reviews/index/{index}, the legacy
// positional mode over the insertion-ordered collection.
func (h *ReviewHandler) DeleteReviewByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.ResponseBadRequest(w, "Review index must be an integer", nil)
		return
	}

	if err := h.service.DeleteReviewByIndex(r.Context(), index); err != nil {
		h.handleServiceError(w, err, "delete review by index")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// handleServiceError maps service failures to HTTP responses by error kind.
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrMovieNotFound):
		h.log.Warn(operation+" failed - movie not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, repository.ErrReviewNotFound):
		h.log.Warn(operation+" failed - review not found", zap.Error(err))
		utils.ResponseNotFound(w, "Review not found")

	case errors.Is(err, repository.ErrReviewIndexOutOfRange):
		h.log.Warn(operation+" failed - index out of range", zap.Error(err))
		utils.ResponseNotFound(w, "Review index out of range")

	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrClassification):
		h.log.Error(operation+" failed - classifier error", zap.Error(err))
		utils.ResponseBadGateway(w, "Sentiment classification failed, please retry")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/dto/response"
	"movie-review-api/internal/sentiment"
	"movie-review-api/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultRecentLimit is used when a recent-reviews request carries no limit.
const DefaultRecentLimit = 10

type ReviewService interface {
	// SubmitReview runs the ingestion pipeline: validate the target movie
	// exists, classify the content, build the immutable review record,
	// persist it. Either a complete review is stored or nothing is.
	SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, movieID *int64) ([]response.ReviewResponse, error)
	GetRecentReviews(ctx context.Context, limit int) ([]response.ReviewResponse, error)
	DeleteAllReviews(ctx context.Context) error
	DeleteReview(ctx context.Context, reviewID int64) error
	// DeleteReviewByIndex is the legacy positional mode over the
	// insertion-ordered collection. Prefer DeleteReview.
	DeleteReviewByIndex(ctx context.Context, index int) error
}

type reviewService struct {
	repo          *repository.Repository
	classifier    sentiment.Classifier
	positiveLabel string
	timeout       time.Duration
	clock         clockwork.Clock
	log           *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	classifier sentiment.Classifier,
	config *utils.Config,
	clock clockwork.Clock,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo:          repo,
		classifier:    classifier,
		positiveLabel: config.Classifier.PositiveLabel,
		timeout:       time.Duration(config.Classifier.TimeoutSeconds) * time.Second,
		clock:         clock,
		log:           log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// The movie must exist before anything else happens; a miss means no
	// classifier call and no write.
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, repository.ErrMovieNotFound)
	}

	// Classification can be slow (model inference); it runs with no store
	// lock held, bounded by the configured timeout.
	classifyCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prediction, err := s.classifier.Classify(classifyCtx, req.Content)
	if err != nil {
		s.log.Error("Failed to classify review content",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	label := entity.SentimentNegative
	if prediction.Label == s.positiveLabel {
		label = entity.SentimentPositive
	}
	score := math.Round(prediction.Score*10000) / 10000

	// The movie may have been deleted while classification was running;
	// writing now would violate the no-orphan invariant.
	exists, err := s.repo.Movie.Exists(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("recheck movie: %w", err)
	}
	if !exists {
		s.log.Warn("Movie deleted during classification",
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, repository.ErrMovieNotFound)
	}

	review := &entity.Review{
		MovieID:        req.MovieID,
		MovieTitle:     movie.Title,
		Content:        req.Content,
		Sentiment:      label,
		SentimentScore: score,
		CreatedAt:      s.clock.Now().Truncate(time.Second),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.String("sentiment", string(review.Sentiment)),
		zap.Float64("score", review.SentimentScore),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, movieID *int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get reviews",
			zap.Error(err),
			zap.Int64p("movie_id", movieID),
		)
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetRecentReviews(ctx context.Context, limit int) ([]response.ReviewResponse, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}
	if limit == 0 {
		return []response.ReviewResponse{}, nil
	}

	reviews, err := s.repo.Review.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get recent reviews",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("get recent reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) DeleteAllReviews(ctx context.Context) error {
	if err := s.repo.Review.DeleteAll(ctx); err != nil {
		s.log.Error("Failed to delete all reviews", zap.Error(err))
		return fmt.Errorf("delete all reviews: %w", err)
	}
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Review.DeleteByID(ctx, reviewID); err != nil {
		s.log.Warn("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

func (s *reviewService) DeleteReviewByIndex(ctx context.Context, index int) error {
	if err := s.repo.Review.DeleteByIndex(ctx, index); err != nil {
		s.log.Warn("Failed to delete review by index",
			zap.Error(err),
			zap.Int("index", index),
		)
		return fmt.Errorf("delete review by index: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"movie-review-api/internal/data/entity"
	"movie-review-api/pkg/database"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// Create persists the movie and assigns a fresh id on it.
	// Ids are monotonically increasing and never reused.
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	// FindByID returns nil when the movie does not exist.
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// DeleteWithReviews removes the movie and every review referencing it in
	// one atomic step. Returns the number of reviews removed.
	DeleteWithReviews(ctx context.Context, id int64) (int64, error)
}

type ReviewRepository interface {
	// Create persists the review and assigns a fresh id on it.
	Create(ctx context.Context, review *entity.Review) error
	// FindAll returns reviews newest-first (creation time descending, ties by
	// reverse insertion order). A non-nil movieID filters to that movie.
	FindAll(ctx context.Context, movieID *int64) ([]*entity.Review, error)
	// FindRecent returns at most limit reviews, newest-first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Review, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	DeleteByID(ctx context.Context, id int64) error
	// DeleteByIndex removes the review at position index in the unfiltered,
	// insertion-ordered collection. Legacy compatibility mode; prefer
	// DeleteByID.
	DeleteByIndex(ctx context.Context, index int) error
	DeleteByMovieID(ctx context.Context, movieID int64) (int64, error)
}

type Repository struct {
	Movie  MovieRepository
	Review ReviewRepository
}

// NewRepository builds the Postgres-backed repository set.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}

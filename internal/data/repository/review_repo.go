package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-review-api/internal/data/entity"
	"movie-review-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (movie_id, movie_title, content, sentiment, sentiment_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.MovieTitle,
		review.Content,
		review.Sentiment,
		review.SentimentScore,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("%w: create review for movie %d: %v", ErrStorage, review.MovieID, err)
	}

	return nil
}

func (r *reviewRepository) FindAll(ctx context.Context, movieID *int64) ([]*entity.Review, error) {
	// Ties on created_at (same-second submissions) break by id descending,
	// which matches reverse insertion order.
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, movie_id, movie_title, content, sentiment, sentiment_score, created_at
		FROM reviews
	`)

	args := []interface{}{}
	if movieID != nil {
		queryBuilder.WriteString(" WHERE movie_id = $1")
		args = append(args, *movieID)
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find reviews",
			zap.Error(err),
			zap.Int64p("movie_id", movieID),
		)
		return nil, fmt.Errorf("%w: find reviews: %v", ErrStorage, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

func (r *reviewRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Review, error) {
	if limit <= 0 {
		return []*entity.Review{}, nil
	}

	query := `
		SELECT id, movie_id, movie_title, content, sentiment, sentiment_score, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent reviews",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("%w: find recent reviews: %v", ErrStorage, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("%w: count reviews: %v", ErrStorage, err)
	}
	return count, nil
}

func (r *reviewRepository) DeleteAll(ctx context.Context) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews`)
	if err != nil {
		r.log.Error("Failed to delete all reviews", zap.Error(err))
		return fmt.Errorf("%w: delete all reviews: %v", ErrStorage, err)
	}

	r.log.Info("All reviews deleted", zap.Int64("count", tag.RowsAffected()))
	return nil
}

func (r *reviewRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("%w: delete review %d: %v", ErrStorage, id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, ErrReviewNotFound)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

// DeleteByIndex removes the review at the given position in the
// insertion-ordered collection (id ascending). Legacy compatibility mode.
func (r *reviewRepository) DeleteByIndex(ctx context.Context, index int) error {
	if index < 0 {
		return fmt.Errorf("index %d: %w", index, ErrReviewIndexOutOfRange)
	}

	query := `
		DELETE FROM reviews
		WHERE id = (SELECT id FROM reviews ORDER BY id ASC OFFSET $1 LIMIT 1)
	`

	tag, err := r.db.Exec(ctx, query, index)
	if err != nil {
		r.log.Error("Failed to delete review by index",
			zap.Error(err),
			zap.Int("index", index),
		)
		return fmt.Errorf("%w: delete review at index %d: %v", ErrStorage, index, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("index %d: %w", index, ErrReviewIndexOutOfRange)
	}

	r.log.Info("Review deleted by index", zap.Int("index", index))
	return nil
}

func (r *reviewRepository) DeleteByMovieID(ctx context.Context, movieID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE movie_id = $1`, movieID)
	if err != nil {
		r.log.Error("Failed to delete reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, fmt.Errorf("%w: delete reviews for movie %d: %v", ErrStorage, movieID, err)
	}

	return tag.RowsAffected(), nil
}

func (r *reviewRepository) scanReviews(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MovieID,
			&review.MovieTitle,
			&review.Content,
			&review.Sentiment,
			&review.SentimentScore,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("%w: scan review: %v", ErrStorage, err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("%w: iterate reviews: %v", ErrStorage, err)
	}

	return reviews, nil
}

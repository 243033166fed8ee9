package repository

import (
	"context"
	"fmt"

	"movie-review-api/internal/data/entity"
	"movie-review-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, director, genre, release_date, poster_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Director,
		movie.Genre,
		movie.ReleaseDate,
		movie.PosterURL,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("%w: create movie: %v", ErrStorage, err)
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, director, genre, release_date, poster_url
		FROM movies
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("%w: find movies: %v", ErrStorage, err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Genre,
			&movie.ReleaseDate,
			&movie.PosterURL,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("%w: scan movie: %v", ErrStorage, err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("%w: iterate movies: %v", ErrStorage, err)
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, director, genre, release_date, poster_url
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Genre,
		&movie.ReleaseDate,
		&movie.PosterURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("%w: find movie %d: %v", ErrStorage, id, err)
	}

	return &movie, nil
}

func (r *movieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie existence",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("%w: check movie %d: %v", ErrStorage, id, err)
	}

	return exists, nil
}

// DeleteWithReviews removes the movie and its reviews in a single transaction
// so readers never observe the movie gone with orphaned reviews left behind.
func (r *movieRepository) DeleteWithReviews(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin cascade delete", zap.Error(err))
		return 0, fmt.Errorf("%w: begin cascade delete: %v", ErrStorage, err)
	}
	defer tx.Rollback(ctx)

	reviewTag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE movie_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete reviews for movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return 0, fmt.Errorf("%w: cascade delete reviews for movie %d: %v", ErrStorage, id, err)
	}

	movieTag, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return 0, fmt.Errorf("%w: delete movie %d: %v", ErrStorage, id, err)
	}

	if movieTag.RowsAffected() == 0 {
		return 0, fmt.Errorf("movie %d: %w", id, ErrMovieNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit cascade delete",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return 0, fmt.Errorf("%w: commit cascade delete for movie %d: %v", ErrStorage, id, err)
	}

	r.log.Info("Movie deleted with reviews",
		zap.Int64("movie_id", id),
		zap.Int64("reviews_deleted", reviewTag.RowsAffected()),
	)

	return reviewTag.RowsAffected(), nil
}

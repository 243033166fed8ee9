package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const createdAtLayout = "2006-01-02 15:04:05"

type legacyMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
	PosterURL   string `json:"poster_url"`
}

type legacyReview struct {
	MovieID        int64   `json:"movie_id"`
	MovieTitle     string  `json:"movie_title"`
	Content        string  `json:"content"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	CreatedAt      string  `json:"created_at"`
}

// MigrateFromFiles copies flat-file records into the tables, once: it runs
// only when the movies table is empty and the legacy JSON files exist.
// Movie ids are preserved; the identity sequence is advanced past them so
// newly created movies never reuse a migrated id.
func MigrateFromFiles(ctx context.Context, db PgxIface, dataDir string, log *zap.Logger) error {
	var movieCount int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&movieCount); err != nil {
		return fmt.Errorf("count movies: %w", err)
	}
	if movieCount > 0 {
		return nil
	}

	migrated, err := migrateMovies(ctx, db, dataDir, log)
	if err != nil {
		return err
	}
	if migrated == 0 {
		return nil
	}

	if err := migrateReviews(ctx, db, dataDir, log); err != nil {
		return err
	}

	return nil
}

func migrateMovies(ctx context.Context, db PgxIface, dataDir string, log *zap.Logger) (int, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "movies.json"))
	if err != nil {
		return 0, nil
	}

	var movies []legacyMovie
	if err := json.Unmarshal(data, &movies); err != nil {
		log.Warn("Malformed legacy movies file, skipping migration", zap.Error(err))
		return 0, nil
	}

	log.Info("Migrating movies.json to database", zap.Int("count", len(movies)))

	for _, m := range movies {
		_, err := db.Exec(ctx,
			`INSERT INTO movies (id, title, director, genre, release_date, poster_url)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, m.Title, m.Director, m.Genre, m.ReleaseDate, m.PosterURL,
		)
		if err != nil {
			return 0, fmt.Errorf("migrate movie %d: %w", m.ID, err)
		}
	}

	if len(movies) > 0 {
		_, err := db.Exec(ctx,
			`SELECT setval(pg_get_serial_sequence('movies', 'id'), (SELECT MAX(id) FROM movies))`)
		if err != nil {
			return 0, fmt.Errorf("advance movie id sequence: %w", err)
		}
	}

	return len(movies), nil
}

func migrateReviews(ctx context.Context, db PgxIface, dataDir string, log *zap.Logger) error {
	data, err := os.ReadFile(filepath.Join(dataDir, "reviews.json"))
	if err != nil {
		return nil
	}

	var reviews []legacyReview
	if err := json.Unmarshal(data, &reviews); err != nil {
		log.Warn("Malformed legacy reviews file, skipping migration", zap.Error(err))
		return nil
	}

	log.Info("Migrating reviews.json to database", zap.Int("count", len(reviews)))

	for _, r := range reviews {
		createdAt, err := time.ParseInLocation(createdAtLayout, r.CreatedAt, time.Local)
		if err != nil {
			log.Warn("Malformed review timestamp, skipping record",
				zap.String("created_at", r.CreatedAt),
			)
			continue
		}

		_, err = db.Exec(ctx,
			`INSERT INTO reviews (movie_id, movie_title, content, sentiment, sentiment_score, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			r.MovieID, r.MovieTitle, r.Content, r.Sentiment, r.SentimentScore, createdAt,
		)
		if err != nil {
			return fmt.Errorf("migrate review for movie %d: %w", r.MovieID, err)
		}
	}

	return nil
}

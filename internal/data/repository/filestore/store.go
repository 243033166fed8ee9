// Package filestore persists the catalog as two flat JSON files, mirroring
// the layout a JSON-style backend is expected to load and save: arrays of
// flat records, with the next movie id derived at load time as max(id)+1.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	moviesFile  = "movies.json"
	reviewsFile = "reviews.json"

	// TimeLayout is the persisted created_at format (second resolution).
	TimeLayout = "2006-01-02 15:04:05"
)

type storedMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
	PosterURL   string `json:"poster_url"`
}

type storedReview struct {
	ID             int64   `json:"id,omitempty"`
	MovieID        int64   `json:"movie_id"`
	MovieTitle     string  `json:"movie_title"`
	Content        string  `json:"content"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	CreatedAt      string  `json:"created_at"`
}

// Store holds both collections behind one mutex so the movie/review cascade
// is atomic to readers. Mutations are serialized (single logical writer);
// reads may run concurrently.
type Store struct {
	mu  sync.RWMutex
	dir string
	log *zap.Logger

	movies  []*entity.Movie
	reviews []*entity.Review

	nextMovieID  int64
	nextReviewID int64
}

// Open loads both collections from dir, creating it if needed. Missing or
// unreadable files start as empty collections.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", repository.ErrStorage, err)
	}

	s := &Store{
		dir: dir,
		log: log.With(zap.String("store", "file")),
	}

	s.loadMovies()
	s.loadReviews()

	s.nextMovieID = 1
	for _, m := range s.movies {
		if m.ID >= s.nextMovieID {
			s.nextMovieID = m.ID + 1
		}
	}

	s.nextReviewID = 1
	for _, r := range s.reviews {
		if r.ID >= s.nextReviewID {
			s.nextReviewID = r.ID + 1
		}
	}

	// Legacy files carry reviews without ids; assign them in insertion order.
	for _, r := range s.reviews {
		if r.ID == 0 {
			r.ID = s.nextReviewID
			s.nextReviewID++
		}
	}

	s.log.Info("File store opened",
		zap.String("dir", dir),
		zap.Int("movies", len(s.movies)),
		zap.Int("reviews", len(s.reviews)),
		zap.Int64("next_movie_id", s.nextMovieID),
	)

	return s, nil
}

func (s *Store) loadMovies() {
	data, err := os.ReadFile(filepath.Join(s.dir, moviesFile))
	if err != nil {
		return
	}

	var stored []storedMovie
	if err := json.Unmarshal(data, &stored); err != nil {
		s.log.Warn("Malformed movies file, starting empty", zap.Error(err))
		return
	}

	for _, m := range stored {
		s.movies = append(s.movies, &entity.Movie{
			ID:          m.ID,
			Title:       m.Title,
			Director:    m.Director,
			Genre:       m.Genre,
			ReleaseDate: m.ReleaseDate,
			PosterURL:   m.PosterURL,
		})
	}
}

func (s *Store) loadReviews() {
	data, err := os.ReadFile(filepath.Join(s.dir, reviewsFile))
	if err != nil {
		return
	}

	var stored []storedReview
	if err := json.Unmarshal(data, &stored); err != nil {
		s.log.Warn("Malformed reviews file, starting empty", zap.Error(err))
		return
	}

	for _, r := range stored {
		createdAt, err := time.ParseInLocation(TimeLayout, r.CreatedAt, time.Local)
		if err != nil {
			s.log.Warn("Malformed review timestamp, skipping record",
				zap.String("created_at", r.CreatedAt),
			)
			continue
		}
		s.reviews = append(s.reviews, &entity.Review{
			ID:             r.ID,
			MovieID:        r.MovieID,
			MovieTitle:     r.MovieTitle,
			Content:        r.Content,
			Sentiment:      entity.Sentiment(r.Sentiment),
			SentimentScore: r.SentimentScore,
			CreatedAt:      createdAt,
		})
	}
}

// saveMovies must be called with the write lock held.
func (s *Store) saveMovies() error {
	stored := make([]storedMovie, len(s.movies))
	for i, m := range s.movies {
		stored[i] = storedMovie{
			ID:          m.ID,
			Title:       m.Title,
			Director:    m.Director,
			Genre:       m.Genre,
			ReleaseDate: m.ReleaseDate,
			PosterURL:   m.PosterURL,
		}
	}
	return s.writeFile(moviesFile, stored)
}

// saveReviews must be called with the write lock held.
func (s *Store) saveReviews() error {
	stored := make([]storedReview, len(s.reviews))
	for i, r := range s.reviews {
		stored[i] = storedReview{
			ID:             r.ID,
			MovieID:        r.MovieID,
			MovieTitle:     r.MovieTitle,
			Content:        r.Content,
			Sentiment:      string(r.Sentiment),
			SentimentScore: r.SentimentScore,
			CreatedAt:      r.CreatedAt.Format(TimeLayout),
		}
	}
	return s.writeFile(reviewsFile, stored)
}

func (s *Store) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", repository.ErrStorage, name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		s.log.Error("Failed to write store file",
			zap.Error(err),
			zap.String("file", name),
		)
		return fmt.Errorf("%w: write %s: %v", repository.ErrStorage, name, err)
	}

	return nil
}

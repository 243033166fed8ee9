package filestore

import (
	"context"
	"fmt"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"

	"go.uber.org/zap"
)

type MovieStore struct {
	store *Store
	log   *zap.Logger
}

func NewMovieStore(store *Store, log *zap.Logger) *MovieStore {
	return &MovieStore{
		store: store,
		log:   log.With(zap.String("repository", "movie-file")),
	}
}

func (m *MovieStore) Create(_ context.Context, movie *entity.Movie) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	movie.ID = s.nextMovieID
	s.nextMovieID++
	s.movies = append(s.movies, movie)

	if err := s.saveMovies(); err != nil {
		// Roll the in-memory append back so committed state stays consistent
		// with the file.
		s.movies = s.movies[:len(s.movies)-1]
		return err
	}

	m.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return nil
}

func (m *MovieStore) FindAll(_ context.Context) ([]*entity.Movie, error) {
	s := m.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := make([]*entity.Movie, len(s.movies))
	copy(movies, s.movies)
	return movies, nil
}

func (m *MovieStore) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	s := m.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, movie := range s.movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}

func (m *MovieStore) Exists(_ context.Context, id int64) (bool, error) {
	s := m.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, movie := range s.movies {
		if movie.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// DeleteWithReviews removes the movie and its reviews under one write lock,
// so no reader observes the movie gone while its reviews remain.
func (m *MovieStore) DeleteWithReviews(_ context.Context, id int64) (int64, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, movie := range s.movies {
		if movie.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return 0, fmt.Errorf("movie %d: %w", id, repository.ErrMovieNotFound)
	}

	s.movies = append(s.movies[:index], s.movies[index+1:]...)

	kept := s.reviews[:0]
	var removed int64
	for _, review := range s.reviews {
		if review.MovieID == id {
			removed++
			continue
		}
		kept = append(kept, review)
	}
	s.reviews = kept

	if err := s.saveMovies(); err != nil {
		return 0, err
	}
	if err := s.saveReviews(); err != nil {
		return 0, err
	}

	m.log.Info("Movie deleted with reviews",
		zap.Int64("movie_id", id),
		zap.Int64("reviews_deleted", removed),
	)
	return removed, nil
}

package filestore

import (
	"context"
	"fmt"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"

	"go.uber.org/zap"
)

type ReviewStore struct {
	store *Store
	log   *zap.Logger
}

func NewReviewStore(store *Store, log *zap.Logger) *ReviewStore {
	return &ReviewStore{
		store: store,
		log:   log.With(zap.String("repository", "review-file")),
	}
}

func (r *ReviewStore) Create(_ context.Context, review *entity.Review) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = s.nextReviewID
	s.nextReviewID++
	s.reviews = append(s.reviews, review)

	if err := s.saveReviews(); err != nil {
		s.reviews = s.reviews[:len(s.reviews)-1]
		return err
	}

	r.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
	)
	return nil
}

// FindAll returns reviews newest-first. The backing slice is insertion
// ordered, so reversal yields creation-time descending with same-second ties
// broken by last-inserted-first.
func (r *ReviewStore) FindAll(_ context.Context, movieID *int64) ([]*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*entity.Review, 0, len(s.reviews))
	for i := len(s.reviews) - 1; i >= 0; i-- {
		review := s.reviews[i]
		if movieID != nil && review.MovieID != *movieID {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *ReviewStore) FindRecent(_ context.Context, limit int) ([]*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return []*entity.Review{}, nil
	}
	if limit > len(s.reviews) {
		limit = len(s.reviews)
	}

	reviews := make([]*entity.Review, 0, limit)
	for i := len(s.reviews) - 1; i >= len(s.reviews)-limit; i-- {
		reviews = append(reviews, s.reviews[i])
	}
	return reviews, nil
}

func (r *ReviewStore) Count(_ context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.reviews)), nil
}

func (r *ReviewStore) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.reviews)
	s.reviews = nil

	if err := s.saveReviews(); err != nil {
		return err
	}

	r.log.Info("All reviews deleted", zap.Int("count", count))
	return nil
}

func (r *ReviewStore) DeleteByID(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, review := range s.reviews {
		if review.ID == id {
			return r.removeAtLocked(i)
		}
	}
	return fmt.Errorf("review %d: %w", id, repository.ErrReviewNotFound)
}

// DeleteByIndex removes the review at the given position in the unfiltered,
// insertion-ordered collection. Legacy compatibility mode; fragile under
// concurrent mutation, prefer DeleteByID.
func (r *ReviewStore) DeleteByIndex(_ context.Context, index int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.reviews) {
		return fmt.Errorf("index %d: %w", index, repository.ErrReviewIndexOutOfRange)
	}
	return r.removeAtLocked(index)
}

func (r *ReviewStore) DeleteByMovieID(_ context.Context, movieID int64) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reviews[:0]
	var removed int64
	for _, review := range s.reviews {
		if review.MovieID == movieID {
			removed++
			continue
		}
		kept = append(kept, review)
	}
	s.reviews = kept

	if err := s.saveReviews(); err != nil {
		return 0, err
	}
	return removed, nil
}

// removeAtLocked must be called with the write lock held.
func (r *ReviewStore) removeAtLocked(index int) error {
	s := r.store

	removed := s.reviews[index]
	s.reviews = append(s.reviews[:index], s.reviews[index+1:]...)

	if err := s.saveReviews(); err != nil {
		return err
	}

	r.log.Info("Review deleted",
		zap.Int64("review_id", removed.ID),
		zap.Int("index", index),
	)
	return nil
}

package usecase

import (
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/sentiment"
	"movie-review-api/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Service struct {
	Movie  MovieService
	Review ReviewService
}

func NewService(
	repo *repository.Repository,
	classifier sentiment.Classifier,
	config *utils.Config,
	clock clockwork.Clock,
	log *zap.Logger,
) *Service {
	return &Service{
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(repo, classifier, config, clock, log),
	}
}

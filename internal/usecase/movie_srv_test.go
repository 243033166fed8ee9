package usecase

import (
	"context"
	"testing"

	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/data/repository/filestore"
	"movie-review-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieFixture(t *testing.T) (MovieService, *repository.Repository) {
	t.Helper()

	store, err := filestore.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	repo := &repository.Repository{
		Movie:  filestore.NewMovieStore(store, zap.NewNop()),
		Review: filestore.NewReviewStore(store, zap.NewNop()),
	}
	return NewMovieService(repo, zap.NewNop()), repo
}

func TestCreateMovie(t *testing.T) {
	service, _ := newMovieFixture(t)

	resp, err := service.CreateMovie(context.Background(), &request.MovieRequest{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		Genre:       "Sci-Fi",
		ReleaseDate: "2010-07-16",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Inception", resp.Title)
}

func TestCreateMovie_ValidationFailures(t *testing.T) {
	service, _ := newMovieFixture(t)
	ctx := context.Background()

	_, err := service.CreateMovie(ctx, &request.MovieRequest{Title: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateMovie(ctx, &request.MovieRequest{
		Title:     "Inception",
		PosterURL: "not a url",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetMovies(t *testing.T) {
	service, _ := newMovieFixture(t)
	ctx := context.Background()

	movies, err := service.GetMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)

	for _, title := range []string{"Inception", "Parasite"} {
		_, err := service.CreateMovie(ctx, &request.MovieRequest{Title: title})
		require.NoError(t, err)
	}

	movies, err = service.GetMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, "Parasite", movies[1].Title)
}

func TestDeleteMovie(t *testing.T) {
	service, repo := newMovieFixture(t)
	ctx := context.Background()

	resp, err := service.CreateMovie(ctx, &request.MovieRequest{Title: "Inception"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteMovie(ctx, resp.ID))

	exists, err := repo.Movie.Exists(ctx, resp.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, service.DeleteMovie(ctx, resp.ID), repository.ErrMovieNotFound)
}

package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/data/repository/filestore"
	"movie-review-api/internal/sentiment"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Mocks ---

type stubClassifier struct {
	prediction *sentiment.Prediction
	err        error
}

func (c *stubClassifier) Classify(_ context.Context, _ string) (*sentiment.Prediction, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.prediction, nil
}

type handlerFixture struct {
	router     *chi.Mux
	repo       *repository.Repository
	classifier *stubClassifier
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	store, err := filestore.Open(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	repo := &repository.Repository{
		Movie:  filestore.NewMovieStore(store, zap.NewNop()),
		Review: filestore.NewReviewStore(store, zap.NewNop()),
	}

	classifier := &stubClassifier{
		prediction: &sentiment.Prediction{Label: "LABEL_1", Score: 0.9},
	}

	config := &utils.Config{
		Classifier: utils.ClassifierConfig{
			TimeoutSeconds: 5,
			PositiveLabel:  "LABEL_1",
		},
	}

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC))
	service := usecase.NewService(repo, classifier, config, clock, zap.NewNop())
	handler := NewHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/movies", handler.Movie.GetMovies)
	r.Post("/api/movies", handler.Movie.CreateMovie)
	r.Delete("/api/movies/{id}", handler.Movie.DeleteMovie)
	r.Post("/api/reviews", handler.Review.CreateReview)
	r.Get("/api/reviews", handler.Review.GetReviews)
	r.Get("/api/reviews/recent", handler.Review.GetRecentReviews)
	r.Delete("/api/reviews", handler.Review.DeleteAllReviews)
	r.Delete("/api/reviews/{id}", handler.Review.DeleteReview)
	r.Delete("/api/reviews/index/{index}", handler.Review.DeleteReviewByIndex)

	return &handlerFixture{router: r, repo: repo, classifier: classifier}
}

func (f *handlerFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *handlerFixture) addMovie(t *testing.T, title string) *entity.Movie {
	t.Helper()

	movie := &entity.Movie{Title: title}
	require.NoError(t, f.repo.Movie.Create(context.Background(), movie))
	return movie
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateReviewEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	movie := f.addMovie(t, "Inception")

	rec := f.do(t, http.MethodPost, "/api/reviews",
		`{"movie_id": 1, "content": "Loved every minute."}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(movie.ID), data["movie_id"])
	assert.Equal(t, "Inception", data["movie_title"])
	assert.Equal(t, "POSITIVE", data["sentiment"])
	assert.Equal(t, "2025-06-01 12:30:45", data["created_at"])
}

func TestCreateReviewEndpoint_MovieNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/reviews",
		`{"movie_id": 99, "content": "Loved it."}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeResponse(t, rec).Status)
}

func TestCreateReviewEndpoint_InvalidBody(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/reviews", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/reviews", `{"movie_id": 1, "content": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReviewEndpoint_ClassifierFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.addMovie(t, "Inception")
	f.classifier.err = errors.New("model server down")

	rec := f.do(t, http.MethodPost, "/api/reviews",
		`{"movie_id": 1, "content": "Loved it."}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// The failed submission must not have stored anything.
	count, err := f.repo.Review.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetReviewsEndpoint_MovieIDFilter(t *testing.T) {
	f := newHandlerFixture(t)
	f.addMovie(t, "Inception")
	f.addMovie(t, "Parasite")

	for _, body := range []string{
		`{"movie_id": 1, "content": "great"}`,
		`{"movie_id": 2, "content": "fine"}`,
	} {
		rec := f.do(t, http.MethodPost, "/api/reviews", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodGet, "/api/reviews?movie_id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := decodeResponse(t, rec).Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)

	rec = f.do(t, http.MethodGet, "/api/reviews?movie_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecentReviewsEndpoint_LimitValidation(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/reviews/recent", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/reviews/recent?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/reviews/recent?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMovieEndpoint_Cascades(t *testing.T) {
	f := newHandlerFixture(t)
	f.addMovie(t, "Inception")

	rec := f.do(t, http.MethodPost, "/api/reviews", `{"movie_id": 1, "content": "great"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/movies/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	count, err := f.repo.Review.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	rec = f.do(t, http.MethodDelete, "/api/movies/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/movies/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteReviewEndpoints(t *testing.T) {
	f := newHandlerFixture(t)
	f.addMovie(t, "Inception")

	for i := 0; i < 2; i++ {
		rec := f.do(t, http.MethodPost, "/api/reviews", `{"movie_id": 1, "content": "great"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := f.do(t, http.MethodDelete, "/api/reviews/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/reviews/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/reviews/index/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/reviews/index/0", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/reviews", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

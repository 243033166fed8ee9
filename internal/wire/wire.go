package wire

import (
	"net/http"

	"movie-review-api/internal/adaptor"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/sentiment"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/middleware"
	"movie-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// App holds the wired application dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(
	repo *repository.Repository,
	classifier sentiment.Classifier,
	config *utils.Config,
	clock clockwork.Clock,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, classifier, config, clock, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router.
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

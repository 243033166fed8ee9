package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - List movies
	r.Get("/api/movies", movieHandler.GetMovies)

	// POST /api/movies - Add a movie to the catalog
	r.Post("/api/movies", movieHandler.CreateMovie)

	// DELETE /api/movies/{id} - Remove a movie and all of its reviews
	r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
}

package response

import (
	"movie-review-api/internal/data/entity"
)

type MovieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
	PosterURL   string `json:"poster_url"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		Genre:       movie.Genre,
		ReleaseDate: movie.ReleaseDate,
		PosterURL:   movie.PosterURL,
	}
}

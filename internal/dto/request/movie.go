package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Director    string `json:"director" validate:"max=100"`
	Genre       string `json:"genre" validate:"max=100"`
	ReleaseDate string `json:"release_date" validate:"max=50"`
	PosterURL   string `json:"poster_url" validate:"omitempty,url"`
}

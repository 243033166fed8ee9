package entity

// Movie is a catalog entry. Records are immutable after creation; the only
// lifecycle transition is deletion, which cascades to dependent reviews.
type Movie struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Director    string `db:"director"`
	Genre       string `db:"genre"`
	ReleaseDate string `db:"release_date"` // free-form, e.g. "2010-07-16"
	PosterURL   string `db:"poster_url"`
}

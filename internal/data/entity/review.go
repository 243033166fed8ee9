package entity

import (
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
)

// Review is a user-submitted text evaluation of a movie. Sentiment and score
// are computed exactly once at creation and never edited. MovieTitle snapshots
// the movie's title at submission time.
type Review struct {
	ID             int64     `db:"id"`
	MovieID        int64     `db:"movie_id"`
	MovieTitle     string    `db:"movie_title"`
	Content        string    `db:"content"`
	Sentiment      Sentiment `db:"sentiment"`
	SentimentScore float64   `db:"sentiment_score"` // in [0,1], rounded to 4 decimals
	CreatedAt      time.Time `db:"created_at"`      // second resolution
}

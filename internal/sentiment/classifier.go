// Package sentiment wraps the external text-classification capability behind
// a small adapter interface. Implementations are constructed once at startup
// (model/resource load is expensive) and are safe for concurrent use.
package sentiment

import (
	"context"
	"errors"
)

// ErrEmptyText is returned when there is nothing to classify.
var ErrEmptyText = errors.New("text is empty")

// Prediction is the raw classifier output. Label is the model's own
// vocabulary (e.g. "LABEL_0"/"LABEL_1"); mapping raw labels to the
// two-valued sentiment enum is the ingestion service's job.
type Prediction struct {
	Label string
	Score float64 // confidence in [0,1]
}

type Classifier interface {
	Classify(ctx context.Context, text string) (*Prediction, error)
}

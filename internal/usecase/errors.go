package usecase

import "errors"

var (
	// ErrValidation marks rejected input; nothing reaches the stores.
	ErrValidation = errors.New("validation failed")

	// ErrClassification marks a failed or timed-out sentiment classifier
	// call. No partial review is persisted; the caller may retry.
	ErrClassification = errors.New("classification failed")
)

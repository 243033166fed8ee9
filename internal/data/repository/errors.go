package repository

import "errors"

// Sentinel errors returned by store implementations. Callers distinguish
// failure kinds with errors.Is instead of matching message text.
var (
	ErrMovieNotFound         = errors.New("movie not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrReviewIndexOutOfRange = errors.New("review index out of range")

	// ErrStorage marks persistence-layer failures (I/O, connection loss).
	// The current operation is aborted; previously committed state is intact.
	ErrStorage = errors.New("storage failure")
)

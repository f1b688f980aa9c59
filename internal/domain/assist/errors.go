package assist

import "errors"

var (
	// ErrUnavailable is surfaced to callers for any upstream model failure.
	// The specific cause is logged, not exposed.
	ErrUnavailable = errors.New("Having trouble connecting to the assistant")

	ErrEmptyQuery = errors.New("Query must not be empty")
)

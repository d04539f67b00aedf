package dispute

import "errors"

var (
	// ErrNotFound is returned by the service when no dispute matched.
	ErrNotFound = errors.New("dispute not found")

	// ErrInvalidQuery is returned when a list query names neither a card set nor a single card.
	ErrInvalidQuery = errors.New("invalid disputes query")
)

package transfer

import "errors"

// ErrAlreadyExists is returned when a write violates a unique constraint,
// e.g. a second stripe transfer with the same stripe id.
var ErrAlreadyExists = errors.New("transfer already exists")

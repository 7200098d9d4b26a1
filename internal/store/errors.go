package store

import "errors"

var (
	// ErrDuplicate means an identical statement row already exists.
	// Callers treat it as "already seen", not as a failure.
	ErrDuplicate = errors.New("statement already in database")
)

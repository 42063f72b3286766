package idea

import "errors"

var (
	// ErrIdeaNotFound indicates the idea doesn't exist.
	ErrIdeaNotFound = errors.New("idea not found")
	// ErrInvalidInput indicates invalid idea input.
	ErrInvalidInput = errors.New("invalid idea input")
)

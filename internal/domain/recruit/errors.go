package recruit

import "errors"

var (
	// ErrPostNotFound indicates the recruitment post doesn't exist.
	ErrPostNotFound = errors.New("recruitment post not found")
	// ErrInvalidInput indicates invalid post or application input.
	ErrInvalidInput = errors.New("invalid recruitment input")
)

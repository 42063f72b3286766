package pitch

import "errors"

var (
	// ErrSessionNotFound indicates the pitch session doesn't exist.
	ErrSessionNotFound = errors.New("pitch session not found")
	// ErrSessionCompleted indicates the session already answered every question.
	ErrSessionCompleted = errors.New("pitch session already completed")
	// ErrEmptyAnswer indicates a blank answer submission.
	ErrEmptyAnswer = errors.New("empty pitch answer")
)

package chat

import "errors"

// ErrEmptyMessage indicates a blank chat submission.
var ErrEmptyMessage = errors.New("empty chat message")

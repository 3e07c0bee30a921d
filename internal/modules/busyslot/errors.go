package busyslot

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("busy slot overlaps an existing one")
	ErrNotFound   = errors.New("busy slot not found")
)

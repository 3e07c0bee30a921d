package session

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("session conflicts with a busy slot")
	ErrNotFound   = errors.New("session not found")
	ErrForbidden  = errors.New("forbidden")
)

package service

import "errors"

// Sentinel errors handlers map to HTTP status codes.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

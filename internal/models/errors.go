package models

import "errors"

// Error kinds. Concrete errors wrap one of these with %w so callers can
// classify them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

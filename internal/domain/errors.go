package domain

import "errors"

// ErrNotFound is returned when the requested trip does not exist.
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (missing field, unparsable date, end date before start date).
// Handlers map this to HTTP 422.
var ErrValidation = errors.New("validation error")

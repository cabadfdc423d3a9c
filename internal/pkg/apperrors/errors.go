package apperrors

import "errors"

// Error taxonomy for the records store. Every operation surfaces exactly one
// of these categories to its caller; nothing is retried or logged internally.
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Storage errors
	ErrStorageFailed   = errors.New("storage operation failed")
	ErrDuplicateRecord = errors.New("record already exists")
)

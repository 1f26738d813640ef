package domain

import "errors"

// Domain errors represent content failures.
// These are distinct from transport errors raised by adapters.
var (
	// ErrNotFound indicates a required document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available in an adapter.
	ErrNotImplemented = errors.New("not implemented")

	// ErrRateLimited indicates the content source rejected the request rate.
	ErrRateLimited = errors.New("rate limited")

	// ErrSourceUnavailable indicates the content source could not be reached
	// or returned an unusable response.
	ErrSourceUnavailable = errors.New("content source unavailable")

	// ErrPlaceholder indicates a placeholder image could not be generated.
	ErrPlaceholder = errors.New("placeholder generation failed")

	// ErrInvalidSettings indicates the loaded configuration is unusable.
	ErrInvalidSettings = errors.New("invalid settings")
)

package prismic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tawa-digital/tawa-content/internal/core/domain"
)

// Prismic-specific errors.
var (
	// ErrNoMasterRef indicates the API root listed no master ref.
	ErrNoMasterRef = errors.New("prismic: no master ref")

	// ErrMaxAttempts indicates every retry attempt failed.
	ErrMaxAttempts = errors.New("prismic: max attempts exceeded")
)

// RateLimitError represents a 429 response with the time it may be retried.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("prismic: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// Unwrap maps the error onto the domain taxonomy.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a non-2xx Prismic API response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("prismic: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps the error onto the domain taxonomy.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return domain.ErrSourceUnavailable
	}
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates a missing or invalid token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// isRetryable reports whether another attempt may succeed.
func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if IsRateLimited(err) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	var netErr *transportError
	return errors.As(err, &netErr)
}

// transportError wraps a failure to reach the API at all.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("prismic: request failed: %v", e.err)
}

func (e *transportError) Unwrap() []error {
	return []error{e.err, domain.ErrSourceUnavailable}
}

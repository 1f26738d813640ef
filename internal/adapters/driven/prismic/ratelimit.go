package prismic

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRequestsPerSecond is the proactive throttle rate.
	DefaultRequestsPerSecond = 20

	// HeaderRetryAfter is the retry-after header (seconds or HTTP date).
	HeaderRetryAfter = "Retry-After"

	// defaultRetryAfter applies when a 429 carries no usable Retry-After.
	defaultRetryAfter = time.Second
)

// RateLimiter combines proactive token bucket throttling with the reactive
// pause requested by 429 responses.
type RateLimiter struct {
	mu       sync.Mutex
	pausedTo time.Time
	bucket   *rate.Limiter
	now      func() time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second.
// A non-positive rps disables proactive throttling.
func NewRateLimiter(rps float64) *RateLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(limit, burst),
		now:    time.Now,
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	pausedTo := r.pausedTo
	r.mu.Unlock()

	if wait := pausedTo.Sub(r.now()); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// CheckRateLimit returns a RateLimitError for 429 responses and pauses
// subsequent requests until the advertised retry time.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	retryAt := r.now().Add(defaultRetryAfter)
	if header := resp.Header.Get(HeaderRetryAfter); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAt = r.now().Add(time.Duration(seconds) * time.Second)
		} else if at, err := http.ParseTime(header); err == nil {
			retryAt = at
		}
	}

	r.mu.Lock()
	if retryAt.After(r.pausedTo) {
		r.pausedTo = retryAt
	}
	r.mu.Unlock()

	return &RateLimitError{RetryAt: retryAt}
}

// PausedUntil returns the time requests are held back until, if any.
func (r *RateLimiter) PausedUntil() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pausedTo
}

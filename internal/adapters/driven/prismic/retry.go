package prismic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tawa-digital/tawa-content/internal/logger"
)

// RetryPolicy configures retries of transient failures.
type RetryPolicy struct {
	// MaxAttempts includes the first attempt; 1 disables retries.
	MaxAttempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration

	// Multiplier grows the delay after each attempt.
	Multiplier float64
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
}

// withDefaults fills unset fields from DefaultRetryPolicy.
func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = def.InitialDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.Multiplier <= 0 {
		p.Multiplier = def.Multiplier
	}
	return p
}

// backoff returns the delay after the given failed attempt (1-based).
func (p RetryPolicy) backoff(attempt int) time.Duration {
	d := time.Duration(float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt-1)))
	if d > p.MaxDelay || d <= 0 {
		d = p.MaxDelay
	}
	return d
}

// retry runs fn until it succeeds, fails permanently or attempts run out.
// Rate limit errors wait at least until their retry time.
func retry(ctx context.Context, p RetryPolicy, log logger.Scope, fn func() error) error {
	p = p.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == p.MaxAttempts {
			break
		}

		delay := p.backoff(attempt)
		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			if until := time.Until(rateErr.RetryAt); until > delay {
				delay = until
			}
		}
		log.Warn("attempt %d/%d failed, retrying in %s: %v", attempt, p.MaxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	if p.MaxAttempts > 1 && isRetryable(lastErr) {
		return fmt.Errorf("%w after %d attempts: %w", ErrMaxAttempts, p.MaxAttempts, lastErr)
	}
	return lastErr
}

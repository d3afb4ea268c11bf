package seoapi

import (
	"context"
	"math"
	"strings"
	"time"
)

// Retry runs a call with exponential backoff. Auth and client errors are
// not retried; network failures, 5xx and rate limits are.
type Retry struct {
	maxRetries int
	baseDelay  time.Duration
	multiplier float64
}

func NewRetry(maxRetries int, baseDelay time.Duration) *Retry {
	return &Retry{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		multiplier: 2.0,
	}
}

func (r *Retry) Execute(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxRetries {
			break
		}
		if !isRetryable(err) {
			return err
		}

		delay := time.Duration(float64(r.baseDelay) * math.Pow(r.multiplier, float64(attempt)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	for _, marker := range []string{"401", "403", "unauthorized", "forbidden", "400", "404"} {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}

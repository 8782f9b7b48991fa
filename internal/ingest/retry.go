package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"math/rand/v2"
	"time"

	"github.com/kfreiman/hirecheck/internal/storage"
)

// RetryConfig bounds the exponential backoff used for source reads and storage writes
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration // zero means uncapped
	Jitter      bool
}

// DefaultRetryConfig is used for storage writes and source reads
var DefaultRetryConfig = RetryConfig{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
	MaxDelay:    10 * time.Second,
	Jitter:      true,
}

// IsRetryable reports whether err is worth another attempt.
// Storage errors defer to their own classification; missing or unreadable sources are permanent.
// Validation and security errors never succeed on a second try.
func IsRetryable(err error) bool {
	var storageErr *storage.StorageError
	if errors.As(err, &storageErr) {
		return storageErr.IsRetryable()
	}

	var sourceErr *SourceError
	if errors.As(err, &sourceErr) {
		return !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission)
	}

	return false
}

// Retry runs fn until it succeeds, fails permanently per IsRetryable, or runs out of attempts.
// Exhaustion yields a *RetryableError wrapping the last failure.
func Retry(ctx context.Context, config RetryConfig, fn func(attempt int) error) error {
	attempts := max(config.MaxAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = fn(attempt); lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		timer := time.NewTimer(config.backoff(attempt))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		}
	}

	return &RetryableError{Err: lastErr, Attempts: attempts}
}

// backoff doubles BaseDelay per failed attempt, caps it at MaxDelay and spreads it by ±25% with Jitter
func (c RetryConfig) backoff(attempt int) time.Duration {
	shift := min(attempt-1, 62)
	delay := c.BaseDelay << shift
	if delay>>shift != c.BaseDelay {
		delay = math.MaxInt64
	}
	if c.MaxDelay > 0 && delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	if c.Jitter {
		delay = time.Duration(float64(delay) * (0.75 + rand.Float64()*0.5))
	}
	return delay
}

package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/domain"
)

// RetryPolicy bounds the transient-failure loop around provider calls.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the provider's free-tier burst behavior: three
// attempts, two seconds before the first retry, doubling after.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 2 * time.Second}
}

// SleepFunc waits out a backoff delay. Injected so tests observe delays
// instead of serving them.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type decision int

const (
	decideFail decision = iota
	decideRetry
)

// classify maps a provider error onto the retry decision and the domain
// error surfaced to callers. A stale or revoked key manifests as a
// "Requested entity was not found" message and must never be retried.
func classify(err error) (error, decision) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		if strings.Contains(apiErr.Message, "Requested entity was not found") {
			return domain.ErrAuthentication, decideFail
		}
		if apiErr.Status == 429 || strings.Contains(apiErr.Message, "RESOURCE_EXHAUSTED") {
			return &wrappedError{sentinel: domain.ErrQuotaExceeded, cause: err}, decideRetry
		}
		return err, decideFail
	}
	msg := err.Error()
	if strings.Contains(msg, "Requested entity was not found") {
		return domain.ErrAuthentication, decideFail
	}
	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return &wrappedError{sentinel: domain.ErrQuotaExceeded, cause: err}, decideRetry
	}
	return err, decideFail
}

type wrappedError struct {
	sentinel error
	cause    error
}

func (w *wrappedError) Error() string { return w.sentinel.Error() + ": " + w.cause.Error() }

func (w *wrappedError) Is(target error) bool { return errors.Is(w.sentinel, target) }

func (w *wrappedError) Unwrap() error { return w.cause }

// doWithRetry runs fn under the policy, sleeping between attempts with a
// doubling delay. Context cancellation during a backoff wait wins over the
// pending retry.
func doWithRetry[T any](ctx context.Context, policy RetryPolicy, sleep SleepFunc, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	delay := policy.BaseDelay
	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		mapped, d := classify(err)
		if d == decideFail {
			return zero, mapped
		}
		lastErr = mapped
		if attempt == policy.MaxAttempts-1 {
			break
		}
		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
		delay *= 2
	}
	return zero, lastErr
}

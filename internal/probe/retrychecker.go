package probe

import (
	"context"
	"fmt"
	"time"
)

// Default retry tuning. Conservative on purpose: these URLs belong to
// someone else's production.
const (
	DefaultMaxRetries = 2
	DefaultBackoff    = 300 * time.Millisecond
	maxBackoff        = 2 * time.Second
)

// RetryChecker retries its inner checker on retryable outcomes (429,
// 5xx, transport failure) with capped exponential backoff. Terminal
// failures (plain 4xx) are returned immediately.
type RetryChecker struct {
	Inner      Checker
	MaxRetries int
	Backoff    time.Duration
}

func NewRetryChecker(inner Checker, maxRetries int, backoff time.Duration) *RetryChecker {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &RetryChecker{Inner: inner, MaxRetries: maxRetries, Backoff: backoff}
}

func (r *RetryChecker) Check(ctx context.Context, target string) CheckResult {
	var last CheckResult
	for attempt := 0; ; attempt++ {
		last = r.Inner.Check(ctx, target)
		if last.Success || Classify(last.StatusCode) != ClassRetryable {
			return last
		}
		if attempt >= r.MaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			last.Message = ctx.Err().Error()
			return last
		case <-time.After(backoffFor(r.Backoff, attempt)):
		}
	}
	last.Message = fmt.Sprintf("%s (after %d retries)", last.Message, r.MaxRetries)
	return last
}

func backoffFor(base time.Duration, attempt int) time.Duration {
	d := base << uint(attempt)
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}

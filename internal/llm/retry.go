package llm

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy bounds repeated model calls. Only rate-limit (HTTP 429)
// failures are retried; everything else surfaces on the first occurrence.
type RetryPolicy struct {
	Attempts       int
	AttemptTimeout time.Duration
	InitialDelay   time.Duration

	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// DefaultRetry is the extraction pipeline's contract: three timed attempts
// of sixty seconds each, backoff starting at two seconds and doubling.
var DefaultRetry = RetryPolicy{
	Attempts:       3,
	AttemptTimeout: 60 * time.Second,
	InitialDelay:   2000 * time.Millisecond,
}

// Do runs call under the policy. A timeout aborts immediately with
// ErrTimeout. If every timed attempt ends rate-limited, one last call is
// issued without a deadline before giving up with ErrRateLimited.
func (p RetryPolicy) Do(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	delay := p.InitialDelay

	for attempt := 1; attempt <= p.Attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, p.AttemptTimeout)
		text, err := call(attemptCtx)
		cancel()

		if err == nil {
			return text, nil
		}

		if !IsRateLimited(err) {
			return "", err
		}

		if attempt < p.Attempts {
			sleep(delay)
			delay *= 2
		}
	}

	// Last resort: one untimed call, in case the provider is shedding load
	// slowly rather than refusing outright.
	text, err := call(ctx)
	if err == nil {
		return text, nil
	}
	if IsRateLimited(err) {
		return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return "", err
}

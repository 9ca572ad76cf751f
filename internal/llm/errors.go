package llm

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTimeout is returned when a model call exceeds its per-attempt deadline.
	ErrTimeout = errors.New("model request timed out")

	// ErrRateLimited is returned once every retry attempt ended in HTTP 429.
	ErrRateLimited = errors.New("model rate limit exhausted")
)

// APIError is a non-2xx reply from the model API. Callers classify on
// StatusCode instead of probing credentials with a separate pre-flight call.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("model api status %d: %s", e.StatusCode, e.Body)
}

// Suggestion maps an upstream status to a remediation hint surfaced to the
// caller alongside the error body.
func (e *APIError) Suggestion() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "API key is invalid or expired. Check the ANTHROPIC_API_KEY configuration."
	case http.StatusTooManyRequests:
		return "API rate limit or quota reached. Wait a moment and try again, or review the account's usage limits."
	default:
		return "Unexpected error from the model API. Retry later or check the provider status page."
	}
}

// IsRateLimited reports whether err is an upstream HTTP 429.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

package extraction

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("imageUrl and menuId are required")

	// ErrImageTooLarge rejects a payload before any model call is made.
	ErrImageTooLarge = fmt.Errorf("image exceeds the %d MB limit", maxImageBytes/(1024*1024))

	errNoJSONObject      = errors.New("no JSON object in model output")
	errMissingCategories = errors.New("model output has no categories array")
	errUnnamedCategory   = errors.New("model output contains a category without a name")
)

// FetchError is a failure retrieving the image itself, before the model is
// involved. Always user-facing, never retried.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch image %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch image %s: status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError carries the raw model reply so unparsable output can be
// diagnosed from the error body alone.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

package sonar

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("sonar: token and project key are required")
	ErrUnauthorized  = errors.New("sonar: unauthorized")
	ErrRateLimited   = errors.New("sonar: rate limited")
	ErrNetwork       = errors.New("sonar: network failure")
)

// APIError is a non-2xx answer that is neither an auth nor a rate-limit failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sonar API error (%d): %s", e.StatusCode, e.Message)
}

package webhook

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyURL        = errors.New("webhook: target URL is empty")
	ErrDeliveryFailed  = errors.New("webhook: delivery failed")
	ErrInvalidResponse = errors.New("webhook: non-2xx response")
)

// StatusError is returned when the receiver answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook receiver returned %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrInvalidResponse
}

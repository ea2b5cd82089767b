package cms

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks every failure of the content API: transport errors,
// non-success statuses and undecodable bodies. Callers fall back to default
// content whenever errors.Is(err, ErrUnavailable).
var ErrUnavailable = errors.New("content API unavailable")

// StatusError reports a non-2xx response from the content API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

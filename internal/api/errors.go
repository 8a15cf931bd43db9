package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks transport-level failures (connection refused, DNS,
// cancelled context). These are distinct from errors the service reported.
var ErrNetwork = errors.New("network error")

// ErrUnauthorized is wrapped by every 401 response so callers can branch on
// authentication failures without inspecting status codes.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-2xx response from the service. Message carries the body's
// "error" field when the service provided one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

func (e *Error) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// UserMessage returns the text a view should display for err: the service's
// own error message when it sent one, otherwise fallback. Transport failures
// always get the fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

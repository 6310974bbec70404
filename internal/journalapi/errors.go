package journalapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingToken reports an authenticated call made without a bearer token.
var ErrMissingToken = errors.New("bearer token is required")

// Error describes a failed journal service call.
//
// StatusCode is zero when the request never produced a response.
type Error struct {
	Op         string
	StatusCode int
	// Message is safe to show to the person using the app.
	Message string
	// Detail carries the raw service response text for logs.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsUnauthorized reports whether err means the bearer token was missing or rejected.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return errors.Is(err, ErrMissingToken)
	}
	return apiErr.StatusCode == http.StatusUnauthorized ||
		apiErr.StatusCode == http.StatusForbidden ||
		errors.Is(apiErr.Err, ErrMissingToken)
}

// IsUnavailable reports whether err means the service could not be reached.
func IsUnavailable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == 0 {
		return !errors.Is(apiErr.Err, ErrMissingToken)
	}
	return apiErr.StatusCode == http.StatusBadGateway ||
		apiErr.StatusCode == http.StatusServiceUnavailable ||
		apiErr.StatusCode == http.StatusGatewayTimeout
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return 0
	}
	return apiErr.StatusCode
}

// Message returns the user-facing message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

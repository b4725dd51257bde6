package client

import (
	"errors"
	"fmt"
)

// ErrSessionExpired indicates the session could not be recovered: the
// refresh token was missing, rejected, or the refresh call itself
// failed. Both tokens have been cleared by the time callers see it.
var ErrSessionExpired = errors.New("session expired")

// Kind classifies a failed request for observability. The
// classification is informational only and never blocks propagation.
type Kind int

const (
	KindUnknown Kind = iota
	// KindUnauthorized is a 401 that was not (or could not be) recovered.
	KindUnauthorized
	// KindNotFound is a 404 response.
	KindNotFound
	// KindServer is any 5xx response.
	KindServer
	// KindNetwork means the request was sent but no response arrived.
	KindNetwork
	// KindSetup means the request could not be constructed or sent.
	KindSetup
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server_error"
	case KindNetwork:
		return "network_error"
	case KindSetup:
		return "request_error"
	default:
		return "unknown"
	}
}

// APIError is the rejection surfaced to callers for any failed request.
// StatusCode is zero for network and setup failures.
type APIError struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int
	Message    string

	err error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	case e.err != nil:
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Kind, e.err)
	default:
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Kind)
	}
}

func (e *APIError) Unwrap() error {
	return e.err
}

// StatusOf returns the HTTP status of err, or zero when err carries none.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

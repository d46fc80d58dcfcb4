package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means the request never completed: the gateway was
	// unreachable, the call timed out or was cancelled, or the response body
	// could not be read.
	ErrNetwork = errors.New("gateway: network failure")
	// ErrDecode means a 2xx response carried a body that is not the expected
	// JSON shape.
	ErrDecode = errors.New("gateway: invalid response body")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Operation  Operation
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway: %s: unexpected status %d", e.Operation, e.StatusCode)
}

// IsNetwork reports whether err is a connectivity failure.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsApplication reports whether the request completed but did not succeed.
func IsApplication(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) || errors.Is(err, ErrDecode)
}

func outcomeOf(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	case errors.As(err, &statusErr):
		return "status_error"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	default:
		return "error"
	}
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors carry the exact message shown to the user. Raw causes from
// the remote service never cross the application boundary; they are logged
// and mapped onto one of these.
var (
	ErrConfiguration      = errors.New("the assistant service is not properly configured")
	ErrInvalidInput       = errors.New("please provide a valid question or request")
	ErrAuthentication     = errors.New("authentication failed, please check your API key")
	ErrNotFound           = errors.New("assistant not found, please check your configuration")
	ErrRateLimited        = errors.New("rate limit exceeded, please try again in a moment")
	ErrServiceUnavailable = errors.New("the assistant service is temporarily unavailable, please try again later")
	ErrRequestFailed      = errors.New("an error occurred while processing your request, please try again")
	ErrRunTerminated      = errors.New("the assistant could not complete the request")
	ErrTimeout            = errors.New("the request timed out, please try again")
	ErrEmptyResponse      = errors.New("no response received from the assistant")
	ErrNoData             = errors.New("no trained data is available for this request, try a demo visualization instead")
)

// StatusError is a remote-service failure tagged with its HTTP-equivalent
// status. Adapters produce it; the application classifies on it.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("assistant service returned status %d", e.Status)
	}

	return fmt.Sprintf("assistant service returned status %d: %s", e.Status, e.Detail)
}

// Permanent reports whether the status marks a failure that must never be
// retried (credentials or addressing, not a transient fault).
func (e *StatusError) Permanent() bool {
	return e.Status == 401 || e.Status == 404
}

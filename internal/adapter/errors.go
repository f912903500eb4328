package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure classes. Every error returned by an [AccountAdapter] wraps exactly
// one of them.
var (
	// ErrTransport means the request could not complete (connectivity, DNS,
	// timeout, cancelled context).
	ErrTransport = errors.New("transport failure")

	// ErrProtocol means the service answered with a non-2xx status.
	ErrProtocol = errors.New("protocol failure")

	// ErrSchema means the status was 2xx but the body could not be used.
	ErrSchema = errors.New("schema failure")
)

// Status sentinels, wrapped together with ErrProtocol by [StatusError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Schema sentinels, wrapped together with ErrSchema.
var (
	ErrEmptyResponse     = errors.New("empty response body")
	ErrMalformedResponse = errors.New("malformed response body")
	ErrMissingUserID     = errors.New("response has no valid user id")
	ErrNegativeCounter   = errors.New("response has a negative counter")
)

// ErrUnsupportedCounter is returned by IncrementCounter for counter kinds
// that have no step-increment endpoint.
var ErrUnsupportedCounter = errors.New("unsupported counter kind")

// StatusError describes a non-2xx answer. It unwraps to both [ErrProtocol]
// and the matching status sentinel (if any), so errors.Is works for either.
type StatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", ErrProtocol, e.StatusCode, body)
}

func (e *StatusError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProtocol}
	}
	return []error{ErrProtocol, e.Err}
}

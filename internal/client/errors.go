package client

import "errors"

var (
	// ErrOperationFailed wraps the reason of a failed sync operation.
	ErrOperationFailed = errors.New("operation failed")

	// ErrNotLoggedIn is returned by commands that need a session when none
	// could be resumed.
	ErrNotLoggedIn = errors.New("not logged in, run login first")

	// ErrInvalidArgument is returned for malformed positional arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

package service

import "errors"

var (
	// ErrNoActiveSession is returned for stat operations, refresh and logout
	// issued while logged out.
	ErrNoActiveSession = errors.New("no active session")

	// ErrNegativeSeconds is returned by AddPlayedSeconds for seconds < 0.
	ErrNegativeSeconds = errors.New("played seconds must not be negative")

	// ErrNoSavedSession is returned by Resume when no last user id is
	// persisted.
	ErrNoSavedSession = errors.New("no saved session")

	// ErrOperationPanicked wraps a panic recovered inside an operation.
	ErrOperationPanicked = errors.New("operation panicked")
)

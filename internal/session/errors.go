package session

import "errors"

var (
	// ErrInvalidProfile is returned by Replace and Refresh for a profile
	// without an assigned id.
	ErrInvalidProfile = errors.New("profile has no valid user id")

	// ErrSessionMismatch means the cached session belongs to a different
	// user than the one the caller expected.
	ErrSessionMismatch = errors.New("active session belongs to another user")

	// ErrNegativeDelta is returned by PatchCounter for delta < 0.
	ErrNegativeDelta = errors.New("counter delta must not be negative")

	// ErrUnknownCounter is returned by PatchCounter for an unknown kind.
	ErrUnknownCounter = errors.New("unknown counter kind")
)

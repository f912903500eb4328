package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLastUserNotFound is returned when no last active user id has been
	// persisted, or it was cleared by a logout.
	ErrLastUserNotFound = errors.New("last user id not found")

	// ErrInvalidUserID is returned when asked to persist a non-positive id.
	ErrInvalidUserID = errors.New("user id must be positive")

	// ErrUnsupportedStorage is returned when the configuration selects no
	// usable backend.
	ErrUnsupportedStorage = errors.New("no storage backend configured")
)

// Low-level operation errors. These are wrapped by repository methods when
// the backend call fails before any domain logic can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrRedisCommand is returned when a redis command fails.
	ErrRedisCommand = errors.New("redis command failed")

	// ErrCorruptedValue is returned when a stored id cannot be parsed.
	ErrCorruptedValue = errors.New("stored last user id is corrupted")
)

package service

import "github.com/google/uuid"

// uuidTraceIDs issues a time-ordered UUIDv7 per operation, so trace ids in
// the log sort by start time.
type uuidTraceIDs struct{}

func (uuidTraceIDs) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the small amount of client state that outlives a
// process: the id of the last user that logged in. Two backends exist, a
// local SQLite file migrated with goose and a redis key.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LastUserRepository stores the id of the last user that entered the
// logged-in state.
type LastUserRepository interface {
	// SaveLastUserID overwrites the stored id. userID must be positive.
	SaveLastUserID(ctx context.Context, userID int64) error
	// GetLastUserID returns the stored id or [ErrLastUserNotFound].
	GetLastUserID(ctx context.Context) (int64, error)
	// ClearLastUserID removes the stored id. Clearing an empty store is not
	// an error.
	ClearLastUserID(ctx context.Context) error
}

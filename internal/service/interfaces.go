// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates the client's session and statistics sync.
//
// [SyncCoordinator] is the façade the rest of the client talks to. Each
// network operation runs on its own goroutine and resolves to exactly one
// [models.Outcome], delivered on the returned channel and published once to
// subscribers as a [models.Notification].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/notify"
	"github.com/MKhiriev/go-stats-sync/models"
)

// SyncCoordinator drives the LoggedOut/LoggedIn session state machine and the
// stat operations of the active user.
//
// Every method returning a channel is non-blocking: the channel receives one
// outcome and is then closed. Operations are not serialised against each
// other; any number may be in flight at once.
type SyncCoordinator interface {
	// Register creates an account and, on success, logs it in.
	Register(ctx context.Context, creds models.Credentials) <-chan models.Outcome

	// Login authenticates and replaces the cached profile with the returned
	// one. The user id is persisted as the last active user.
	Login(ctx context.Context, creds models.Credentials) <-chan models.Outcome

	// Resume re-establishes the session of the persisted last active user by
	// fetching its profile. It reports like Login.
	Resume(ctx context.Context) <-chan models.Outcome

	// Refresh re-fetches the active user's profile and replaces the cache if
	// the session did not change meanwhile.
	Refresh(ctx context.Context) <-chan models.Outcome

	// Logout drops the session and the persisted last user id. It publishes
	// logout-success and returns nil, or returns [ErrNoActiveSession] without
	// publishing anything when already logged out.
	Logout(ctx context.Context) error

	// IncrementEnemiesEliminated adds one eliminated enemy.
	IncrementEnemiesEliminated(ctx context.Context) <-chan models.Outcome

	// IncrementDefeats adds one defeat.
	IncrementDefeats(ctx context.Context) <-chan models.Outcome

	// IncrementWins adds one win.
	IncrementWins(ctx context.Context) <-chan models.Outcome

	// AddPlayedSeconds adds seconds of play time. Negative values fail with
	// [ErrNegativeSeconds] before any request is sent.
	AddPlayedSeconds(ctx context.Context, seconds int64) <-chan models.Outcome

	// SetLastPlayed replaces the last-played timestamp.
	SetLastPlayed(ctx context.Context, timestamp string) <-chan models.Outcome

	// CurrentUser returns a copy of the cached profile.
	CurrentUser() (models.UserProfile, bool)

	// ActiveUserID returns the logged-in user's id or 0.
	ActiveUserID() int64

	// Subscribe registers h for notifications of the given kinds (all kinds
	// when none are given).
	Subscribe(h notify.Handler, kinds ...models.NotificationKind) notify.Subscription

	// Wait blocks until every operation started so far has resolved.
	Wait()
}

// PlaytimeJob periodically reports elapsed play time for the active user.
type PlaytimeJob interface {
	// Start launches the background flush loop. Any previously running loop
	// is stopped first. If interval is zero or negative it defaults to one
	// minute.
	Start(ctx context.Context, interval time.Duration)

	// Flush reports the whole seconds elapsed since the last successful
	// flush and stamps the last-played time.
	Flush(ctx context.Context) error

	// Stop ends the loop, performs a final flush and blocks until both have
	// finished. Safe to call when the job is not running.
	Stop()
}

// TraceIDGenerator produces per-operation trace ids.
type TraceIDGenerator interface {
	Generate() string
}

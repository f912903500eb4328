// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that talks to the remote
// account service.
//
// The primary abstraction is [AccountAdapter], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAccountAdapter]) built on resty.
//
// Every failure is classified into one of three classes defined in errors.go
// ([ErrTransport], [ErrProtocol], [ErrSchema]) so callers can use
// [errors.Is] to tell connectivity problems, server rejections and unusable
// bodies apart. Non-2xx answers are reported as [*StatusError], which also
// unwraps to a status sentinel such as [ErrUnauthorized] or [ErrNotFound].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stats-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_adapter_mock.go -package=mock

// AccountAdapter defines transport-agnostic communication with the account
// service. Each method performs exactly one request attempt and never
// retries. Implementations never interpret session semantics: they only
// report whether the transport succeeded, whether the status was 2xx, and
// whether the body matched the expected schema.
type AccountAdapter interface {
	// Register creates an account for creds and returns the profile the
	// service assigned. A 2xx answer without a usable profile (empty body,
	// malformed JSON, missing or zero id) is an [ErrSchema] failure.
	Register(ctx context.Context, creds models.Credentials) (models.UserProfile, error)

	// Login authenticates creds and returns the full stored profile. Same
	// schema rules as Register.
	Login(ctx context.Context, creds models.Credentials) (models.UserProfile, error)

	// FetchUser loads the profile of userID. Same schema rules as Register.
	FetchUser(ctx context.Context, userID int64) (models.UserProfile, error)

	// IncrementCounter asks the service to add one to a step counter
	// (enemies eliminated, defeats or wins). No payload is exchanged beyond
	// the resource path; any 2xx body is ignored. Returns
	// [ErrUnsupportedCounter] for other kinds without sending a request.
	IncrementCounter(ctx context.Context, userID int64, kind models.CounterKind) error

	// AddPlayedSeconds adds seconds to the accumulated play time.
	AddPlayedSeconds(ctx context.Context, userID int64, seconds int64) error

	// SetLastPlayed replaces the stored last-played timestamp.
	SetLastPlayed(ctx context.Context, userID int64, timestamp string) error
}

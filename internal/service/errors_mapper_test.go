// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/app"
	"github.com/MKhiriev/go-stats-sync/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestFailureReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no session", ErrNoActiveSession, app.MsgNoActiveSession},
		{"negative seconds", ErrNegativeSeconds, app.MsgNegativeSeconds},
		{"nothing saved", ErrNoSavedSession, app.MsgNoSavedSession},
		{"session changed", fmt.Errorf("patch: %w", session.ErrSessionMismatch), app.MsgSessionChanged},
		{"empty body", fmt.Errorf("%w: %w", adapter.ErrSchema, adapter.ErrEmptyResponse), app.MsgEmptyResponse},
		{"malformed body", fmt.Errorf("%w: %w", adapter.ErrSchema, adapter.ErrMalformedResponse), app.MsgMalformedResponse},
		{"zero id", fmt.Errorf("%w: %w", adapter.ErrSchema, adapter.ErrMissingUserID), app.MsgInvalidResponseFormat},
		{"negative counter", fmt.Errorf("%w: %w", adapter.ErrSchema, adapter.ErrNegativeCounter), app.MsgInvalidResponseFormat},
		{
			"status with body",
			&adapter.StatusError{StatusCode: 401, Body: "invalid username or password", Err: adapter.ErrUnauthorized},
			"invalid username or password (http 401)",
		},
		{
			"status without body",
			&adapter.StatusError{StatusCode: 502, Err: adapter.ErrBadGateway},
			app.MsgRequestRejected + " (http 502 Bad Gateway)",
		},
		{
			"transport",
			fmt.Errorf("%w: login request: %w", adapter.ErrTransport, errors.New("connection refused")),
			app.MsgServiceUnreachable + ": login request: connection refused",
		},
		{"panic", fmt.Errorf("%w: boom", ErrOperationPanicked), app.MsgUnexpectedError},
		{"unknown", errors.New("whatever"), app.MsgUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failureReason(tt.err))
		})
	}
}

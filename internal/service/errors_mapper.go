// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/app"
	"github.com/MKhiriev/go-stats-sync/internal/session"
)

// failureReason translates a classified error into a display string.
// Schema reasons come from the client's own catalogue; protocol reasons keep
// the server's text together with the status.
func failureReason(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *adapter.StatusError

	switch {
	case errors.Is(err, ErrNoActiveSession):
		return app.MsgNoActiveSession
	case errors.Is(err, ErrNegativeSeconds):
		return app.MsgNegativeSeconds
	case errors.Is(err, ErrNoSavedSession):
		return app.MsgNoSavedSession
	case errors.Is(err, session.ErrSessionMismatch):
		return app.MsgSessionChanged

	case errors.Is(err, adapter.ErrEmptyResponse):
		return app.MsgEmptyResponse
	case errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgMalformedResponse
	case errors.Is(err, adapter.ErrSchema):
		return app.MsgInvalidResponseFormat

	case errors.As(err, &statusErr):
		if statusErr.Body == "" {
			return fmt.Sprintf("%s (http %d %s)", app.MsgRequestRejected, statusErr.StatusCode, http.StatusText(statusErr.StatusCode))
		}
		return fmt.Sprintf("%s (http %d)", statusErr.Body, statusErr.StatusCode)

	case errors.Is(err, adapter.ErrTransport):
		return app.MsgServiceUnreachable + ": " + extractDiagnostic(err, adapter.ErrTransport)
	}

	return app.MsgUnexpectedError
}

// extractDiagnostic strips the "<class>: " prefix from a wrapped error
// message.
func extractDiagnostic(err, class error) string {
	return strings.TrimPrefix(err.Error(), class.Error()+": ")
}

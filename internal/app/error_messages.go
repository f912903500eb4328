// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the display strings used as failure reasons in
// operation outcomes.
//
// Reasons for schema failures are generated here, never taken from the
// server, so a caller can tell a client-side parsing problem apart from a
// rejection reported by the account service.
package app

const (
	// MsgNoActiveSession is the reason for a stat operation or logout issued
	// while logged out.
	MsgNoActiveSession = "no active session"

	// MsgNegativeSeconds is the reason for AddPlayedSeconds with seconds < 0.
	MsgNegativeSeconds = "played seconds must not be negative"

	// MsgEmptyResponse is the reason when a 2xx answer has no body.
	MsgEmptyResponse = "the server returned an empty response"

	// MsgMalformedResponse is the reason when a 2xx body is not a valid
	// profile document.
	MsgMalformedResponse = "could not process the server response"

	// MsgInvalidResponseFormat is the reason when the profile lacks a valid
	// id or carries impossible counter values.
	MsgInvalidResponseFormat = "invalid server response format"

	// MsgServiceUnreachable prefixes transport diagnostics.
	MsgServiceUnreachable = "could not reach the account service"

	// MsgRequestRejected prefixes protocol failures whose body is empty.
	MsgRequestRejected = "request rejected by the account service"

	// MsgSessionChanged is the reason when the active session changed while
	// a request for the previous user was in flight.
	MsgSessionChanged = "the active session changed before the request completed"

	// MsgNoSavedSession is the reason for Resume when nothing was persisted.
	MsgNoSavedSession = "no saved session to resume"

	// MsgUnexpectedError covers recovered panics and unclassified errors.
	MsgUnexpectedError = "unexpected client error"
)

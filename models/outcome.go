// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Operation names a public sync operation. Values double as metric labels.
type Operation string

const (
	OperationRegister          Operation = "register"
	OperationLogin             Operation = "login"
	OperationResume            Operation = "resume"
	OperationLogout            Operation = "logout"
	OperationRefresh           Operation = "refresh"
	OperationEnemiesEliminated Operation = "increment_enemies_eliminated"
	OperationDefeats           Operation = "increment_defeats"
	OperationWins              Operation = "increment_wins"
	OperationAddPlayedSeconds  Operation = "add_played_seconds"
	OperationSetLastPlayed     Operation = "set_last_played"
)

// NotificationKind enumerates the outcome notifications a caller can observe.
type NotificationKind string

const (
	NotificationLoginSuccess    NotificationKind = "login-success"
	NotificationLoginFailure    NotificationKind = "login-failure"
	NotificationRegisterSuccess NotificationKind = "register-success"
	NotificationRegisterFailure NotificationKind = "register-failure"
	NotificationLogoutSuccess   NotificationKind = "logout-success"
	NotificationStatsUpdated    NotificationKind = "stats-updated"
	NotificationProfileRefresh  NotificationKind = "profile-refreshed"
	NotificationRefreshFailure  NotificationKind = "refresh-failure"
)

// Outcome is the single result of one sync operation invocation.
type Outcome struct {
	// Operation is the operation that produced this outcome.
	Operation Operation

	// TraceID correlates the outcome with log lines and the X-Trace-ID
	// header of the request, if one was sent.
	TraceID string

	// Success is true when the operation completed and its effect was
	// applied to the session.
	Success bool

	// Profile is a snapshot of the cached profile after a successful
	// operation. Zero when no session remains (e.g. after logout).
	Profile UserProfile

	// Reason is a display-ready failure description. Empty on success.
	Reason string

	// Err keeps the classified error for programmatic inspection with
	// errors.Is. Nil on success.
	Err error

	// Duration is the wall time spent on the operation.
	Duration time.Duration
}

// Notification is what subscribers receive: the outcome tagged with the
// notification kind it maps to.
type Notification struct {
	Kind    NotificationKind
	Outcome Outcome
}

// NotificationKindFor maps an operation and its success flag onto the
// notification set. Every stat-mutating operation reports stats-updated;
// resume reports as a login.
func NotificationKindFor(op Operation, success bool) NotificationKind {
	switch op {
	case OperationRegister:
		if success {
			return NotificationRegisterSuccess
		}
		return NotificationRegisterFailure
	case OperationLogin, OperationResume:
		if success {
			return NotificationLoginSuccess
		}
		return NotificationLoginFailure
	case OperationLogout:
		return NotificationLogoutSuccess
	case OperationRefresh:
		if success {
			return NotificationProfileRefresh
		}
		return NotificationRefreshFailure
	default:
		return NotificationStatsUpdated
	}
}

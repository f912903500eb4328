// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UserProfile is the locally cached representation of the authenticated
// player: identity plus the gameplay counters kept in sync with the account
// service. JSON tags follow the account service's wire schema.
type UserProfile struct {
	// ID is the account identifier assigned by the account service.
	// Positive once assigned; zero means "no user".
	ID int64 `json:"id_usuario"`

	// Username is the display name chosen at registration. The client never
	// changes it.
	Username string `json:"nombre_usuario"`

	// RegisteredAt is the registration timestamp in the service's own
	// format. The client stores and re-sends it, it never parses it.
	RegisteredAt string `json:"fecha_registro"`

	// LastPlayed is the last-played timestamp, opaque like RegisteredAt.
	LastPlayed string `json:"ultima_partida"`

	// EnemiesEliminated counts enemies the player has eliminated.
	EnemiesEliminated int64 `json:"enemigos_eliminados"`

	// Defeats counts lost matches.
	Defeats int64 `json:"derrotas"`

	// Wins counts won matches.
	Wins int64 `json:"veces_ganadas"`

	// SecondsPlayed is the accumulated play time in seconds.
	SecondsPlayed int64 `json:"tiempo_jugado"`
}

// IsZero reports whether p carries no assigned account id.
func (p UserProfile) IsZero() bool {
	return p.ID <= 0
}

// Counter returns the current value of the counter identified by kind.
// Unknown kinds yield zero.
func (p UserProfile) Counter(kind CounterKind) int64 {
	switch kind {
	case CounterEnemiesEliminated:
		return p.EnemiesEliminated
	case CounterDefeats:
		return p.Defeats
	case CounterWins:
		return p.Wins
	case CounterSecondsPlayed:
		return p.SecondsPlayed
	}
	return 0
}

// FormattedTimePlayed renders SecondsPlayed as HH:MM:SS. Hours are not
// wrapped at 24, so long-time players see e.g. "131:04:09".
func (p UserProfile) FormattedTimePlayed() string {
	total := p.SecondsPlayed
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CounterKind identifies one of the gameplay counters held on [UserProfile].
type CounterKind int

const (
	// CounterEnemiesEliminated is incremented by one per eliminated enemy.
	CounterEnemiesEliminated CounterKind = iota + 1
	// CounterDefeats is incremented by one per lost match.
	CounterDefeats
	// CounterWins is incremented by one per won match.
	CounterWins
	// CounterSecondsPlayed accumulates play time; its delta is a number of
	// seconds rather than one.
	CounterSecondsPlayed
)

// String returns the counter name used in logs and metrics labels.
func (k CounterKind) String() string {
	switch k {
	case CounterEnemiesEliminated:
		return "enemies_eliminated"
	case CounterDefeats:
		return "defeats"
	case CounterWins:
		return "wins"
	case CounterSecondsPlayed:
		return "seconds_played"
	default:
		return "unknown"
	}
}

// IsStep reports whether k is one of the three counters that always move by
// exactly one.
func (k CounterKind) IsStep() bool {
	return k == CounterEnemiesEliminated || k == CounterDefeats || k == CounterWins
}

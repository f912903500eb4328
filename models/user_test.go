package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_FormattedTimePlayed(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3725, "01:02:05"},
		{471849, "131:04:09"},
		{-10, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, UserProfile{SecondsPlayed: tt.seconds}.FormattedTimePlayed())
		})
	}
}

func TestUserProfile_Counter(t *testing.T) {
	p := UserProfile{ID: 1, EnemiesEliminated: 1, Defeats: 2, Wins: 3, SecondsPlayed: 4}

	assert.Equal(t, int64(1), p.Counter(CounterEnemiesEliminated))
	assert.Equal(t, int64(2), p.Counter(CounterDefeats))
	assert.Equal(t, int64(3), p.Counter(CounterWins))
	assert.Equal(t, int64(4), p.Counter(CounterSecondsPlayed))
	assert.Zero(t, p.Counter(CounterKind(42)))
}

func TestUserProfile_IsZero(t *testing.T) {
	assert.True(t, UserProfile{}.IsZero())
	assert.True(t, UserProfile{ID: -1, Username: "x"}.IsZero())
	assert.False(t, UserProfile{ID: 1}.IsZero())
}

func TestCounterKind(t *testing.T) {
	assert.True(t, CounterWins.IsStep())
	assert.False(t, CounterSecondsPlayed.IsStep())
	assert.Equal(t, "defeats", CounterDefeats.String())
	assert.Equal(t, "unknown", CounterKind(0).String())
}

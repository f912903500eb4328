// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the locally cached profile of the authenticated
// player.
//
// A [Store] contains zero or one [models.UserProfile]. Every method is a
// single critical section, so concurrent increments are never lost and a
// reader never observes a half-written profile. The store knows nothing about
// the network; callers decide what to write after a remote call resolves.
package session

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-stats-sync/models"
)

// Store is a mutex-guarded holder for the active session profile.
// The zero value is an empty store ready for use.
type Store struct {
	mu      sync.RWMutex
	profile *models.UserProfile
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace installs profile as the active session, overwriting any existing
// one.
func (s *Store) Replace(profile models.UserProfile) error {
	if profile.IsZero() {
		return ErrInvalidProfile
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = &profile
	return nil
}

// Refresh overwrites the cached profile only while the session still belongs
// to expectedID. With no session it returns [ErrSessionMismatch] too; a
// refresh must never log anybody in.
func (s *Store) Refresh(expectedID int64, profile models.UserProfile) error {
	if profile.IsZero() {
		return ErrInvalidProfile
	}
	if profile.ID != expectedID {
		return fmt.Errorf("%w: fetched id %d, expected %d", ErrSessionMismatch, profile.ID, expectedID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil || s.profile.ID != expectedID {
		return ErrSessionMismatch
	}
	s.profile = &profile
	return nil
}

// PatchCounter adds delta to one counter of the session owned by userID and
// returns the patched profile. With no session it does nothing and returns
// the zero profile.
func (s *Store) PatchCounter(userID int64, kind models.CounterKind, delta int64) (models.UserProfile, error) {
	if delta < 0 {
		return models.UserProfile{}, ErrNegativeDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, nil
	}
	if s.profile.ID != userID {
		return models.UserProfile{}, ErrSessionMismatch
	}

	switch kind {
	case models.CounterEnemiesEliminated:
		s.profile.EnemiesEliminated += delta
	case models.CounterDefeats:
		s.profile.Defeats += delta
	case models.CounterWins:
		s.profile.Wins += delta
	case models.CounterSecondsPlayed:
		s.profile.SecondsPlayed += delta
	default:
		return models.UserProfile{}, fmt.Errorf("%w: %d", ErrUnknownCounter, kind)
	}
	return *s.profile, nil
}

// SetLastPlayed stores ts on the session owned by userID, with the same
// no-session and mismatch rules as PatchCounter.
func (s *Store) SetLastPlayed(userID int64, ts string) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, nil
	}
	if s.profile.ID != userID {
		return models.UserProfile{}, ErrSessionMismatch
	}

	s.profile.LastPlayed = ts
	return *s.profile, nil
}

// Clear drops the session and returns the dropped profile. The bool is false
// when there was nothing to drop.
func (s *Store) Clear() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return models.UserProfile{}, false
	}
	dropped := *s.profile
	s.profile = nil
	return dropped, true
}

// Current returns a copy of the cached profile.
func (s *Store) Current() (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return *s.profile, true
}

// ActiveUserID returns the id of the cached profile, or 0 when logged out.
func (s *Store) ActiveUserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return 0
	}
	return s.profile.ID
}

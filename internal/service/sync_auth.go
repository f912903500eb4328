package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stats-sync/internal/adapter"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/internal/session"
	"github.com/MKhiriev/go-stats-sync/internal/store"
	"github.com/MKhiriev/go-stats-sync/models"
)

func (c *syncCoordinator) Register(ctx context.Context, creds models.Credentials) <-chan models.Outcome {
	return c.start(ctx, models.OperationRegister, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		profile, err := c.accounts.Register(ctx, creds)
		if err != nil {
			return models.UserProfile{}, err
		}

		return c.enterSession(ctx, log, profile)
	})
}

func (c *syncCoordinator) Login(ctx context.Context, creds models.Credentials) <-chan models.Outcome {
	return c.start(ctx, models.OperationLogin, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		profile, err := c.accounts.Login(ctx, creds)
		if err != nil {
			return models.UserProfile{}, err
		}

		return c.enterSession(ctx, log, profile)
	})
}

func (c *syncCoordinator) Resume(ctx context.Context) <-chan models.Outcome {
	return c.start(ctx, models.OperationResume, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		userID, err := c.lastUser.GetLastUserID(ctx)
		if errors.Is(err, store.ErrLastUserNotFound) {
			return models.UserProfile{}, ErrNoSavedSession
		}
		if err != nil {
			return models.UserProfile{}, err
		}

		profile, err := c.accounts.FetchUser(ctx, userID)
		if errors.Is(err, adapter.ErrNotFound) {
			c.forgetLastUser(ctx, log)
		}
		if err != nil {
			return models.UserProfile{}, err
		}
		if profile.ID != userID {
			return models.UserProfile{}, fmt.Errorf("%w: fetched id %d, expected %d", session.ErrSessionMismatch, profile.ID, userID)
		}

		return c.enterSession(ctx, log, profile)
	})
}

func (c *syncCoordinator) Refresh(ctx context.Context) <-chan models.Outcome {
	userID := c.sessions.ActiveUserID()
	if userID <= 0 {
		return c.reject(models.OperationRefresh, ErrNoActiveSession)
	}

	return c.start(ctx, models.OperationRefresh, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		profile, err := c.accounts.FetchUser(ctx, userID)
		if err != nil {
			return models.UserProfile{}, err
		}

		if err = c.sessions.Refresh(userID, profile); err != nil {
			return models.UserProfile{}, err
		}

		return profile, nil
	})
}

func (c *syncCoordinator) Logout(ctx context.Context) error {
	dropped, ok := c.sessions.Clear()
	if !ok {
		c.logger.Warn().Str("func", "syncCoordinator.Logout").Msg("no active session to close")
		return ErrNoActiveSession
	}

	traceID := c.traceIDs.Generate()
	log := c.logger.WithTraceID(traceID)
	done := c.recorder.Start(models.OperationLogout)

	c.forgetLastUser(ctx, log)
	done(true)

	log.Info().Str("func", "syncCoordinator.Logout").Int64("user_id", dropped.ID).Msg("logged out")
	c.emitter.Publish(models.Notification{
		Kind: models.NotificationLogoutSuccess,
		Outcome: models.Outcome{
			Operation: models.OperationLogout,
			TraceID:   traceID,
			Success:   true,
		},
	})

	return nil
}

// enterSession installs profile as the active session and remembers its id.
func (c *syncCoordinator) enterSession(ctx context.Context, log *logger.Logger, profile models.UserProfile) (models.UserProfile, error) {
	if err := c.sessions.Replace(profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", adapter.ErrSchema, err)
	}

	if err := c.lastUser.SaveLastUserID(ctx, profile.ID); err != nil {
		log.Err(err).
			Str("func", "syncCoordinator.enterSession").
			Int64("user_id", profile.ID).
			Msg("failed to persist last user id")
	}

	return profile, nil
}

func (c *syncCoordinator) forgetLastUser(ctx context.Context, log *logger.Logger) {
	if err := c.lastUser.ClearLastUserID(ctx); err != nil {
		log.Err(err).
			Str("func", "syncCoordinator.forgetLastUser").
			Msg("failed to clear last user id")
	}
}

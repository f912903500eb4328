package service

import (
	"context"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
)

func (c *syncCoordinator) IncrementEnemiesEliminated(ctx context.Context) <-chan models.Outcome {
	return c.increment(ctx, models.OperationEnemiesEliminated, models.CounterEnemiesEliminated)
}

func (c *syncCoordinator) IncrementDefeats(ctx context.Context) <-chan models.Outcome {
	return c.increment(ctx, models.OperationDefeats, models.CounterDefeats)
}

func (c *syncCoordinator) IncrementWins(ctx context.Context) <-chan models.Outcome {
	return c.increment(ctx, models.OperationWins, models.CounterWins)
}

// increment bumps a step counter remotely and, on success, by one locally.
// The local patch targets the user the request was sent for; if that user
// is no longer active the patch fails with session.ErrSessionMismatch.
func (c *syncCoordinator) increment(ctx context.Context, op models.Operation, kind models.CounterKind) <-chan models.Outcome {
	userID := c.sessions.ActiveUserID()
	if userID <= 0 {
		return c.reject(op, ErrNoActiveSession)
	}

	return c.start(ctx, op, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		if err := c.accounts.IncrementCounter(ctx, userID, kind); err != nil {
			return models.UserProfile{}, err
		}

		return c.sessions.PatchCounter(userID, kind, 1)
	})
}

func (c *syncCoordinator) AddPlayedSeconds(ctx context.Context, seconds int64) <-chan models.Outcome {
	userID := c.sessions.ActiveUserID()
	if userID <= 0 {
		return c.reject(models.OperationAddPlayedSeconds, ErrNoActiveSession)
	}
	if seconds < 0 {
		return c.reject(models.OperationAddPlayedSeconds, ErrNegativeSeconds)
	}

	return c.start(ctx, models.OperationAddPlayedSeconds, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		if err := c.accounts.AddPlayedSeconds(ctx, userID, seconds); err != nil {
			return models.UserProfile{}, err
		}

		return c.sessions.PatchCounter(userID, models.CounterSecondsPlayed, seconds)
	})
}

func (c *syncCoordinator) SetLastPlayed(ctx context.Context, timestamp string) <-chan models.Outcome {
	userID := c.sessions.ActiveUserID()
	if userID <= 0 {
		return c.reject(models.OperationSetLastPlayed, ErrNoActiveSession)
	}

	return c.start(ctx, models.OperationSetLastPlayed, func(ctx context.Context, log *logger.Logger) (models.UserProfile, error) {
		if err := c.accounts.SetLastPlayed(ctx, userID, timestamp); err != nil {
			return models.UserProfile{}, err
		}

		return c.sessions.SetLastPlayed(userID, timestamp)
	})
}

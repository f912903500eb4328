package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stats-sync/internal/config"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// LastUserRepository persists the id of the last logged-in user.
	LastUserRepository LastUserRepository

	close func() error
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger:
//  1. When cfg.Redis.URL is set, it connects to redis and stores state under
//     [LastUserKey].
//  2. Otherwise it opens the SQLite file at cfg.DB.DSN, creating it if it
//     does not exist, and runs pending migrations via [DB.Migrate].
//
// Returns an error if the backend cannot be reached or migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	if cfg.Redis.URL != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("redis connection error: %w", err)
		}

		return &ClientStorages{
			LastUserRepository: NewLastUserRedisRepository(client, logger),
			close:              client.Close,
		}, nil
	}

	if cfg.DB.DSN == "" {
		return nil, ErrUnsupportedStorage
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LastUserRepository: NewLastUserSQLiteRepository(db, logger),
		close:              db.Close,
	}, nil
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

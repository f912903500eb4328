package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
)

type lastUserSQLiteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLastUserSQLiteRepository returns a [LastUserRepository] backed by the
// session_state table.
func NewLastUserSQLiteRepository(db *DB, logger *logger.Logger) LastUserRepository {
	return &lastUserSQLiteRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *lastUserSQLiteRepository) SaveLastUserID(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	if _, err := r.DB.ExecContext(ctx, saveLastUserID, userID, r.now().UTC()); err != nil {
		r.logger.Err(err).
			Str("func", "lastUserSQLiteRepository.SaveLastUserID").
			Int64("user_id", userID).
			Msg("failed to upsert last user id")
		return fmt.Errorf("%w: save last user id: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *lastUserSQLiteRepository) GetLastUserID(ctx context.Context) (int64, error) {
	var userID int64
	err := r.DB.QueryRowContext(ctx, getLastUserID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrLastUserNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "lastUserSQLiteRepository.GetLastUserID").
			Msg("failed to query last user id")
		return 0, fmt.Errorf("%w: get last user id: %w", ErrExecutingQuery, err)
	}

	return userID, nil
}

func (r *lastUserSQLiteRepository) ClearLastUserID(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearLastUserID); err != nil {
		r.logger.Err(err).
			Str("func", "lastUserSQLiteRepository.ClearLastUserID").
			Msg("failed to delete last user id")
		return fmt.Errorf("%w: clear last user id: %w", ErrExecutingStatement, err)
	}

	return nil
}

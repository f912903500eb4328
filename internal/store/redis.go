package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-stats-sync/internal/config"
	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/redis/go-redis/v9"
)

// LastUserKey is the redis key holding the last active user id.
const LastUserKey = "stats-sync:last-user-id"

// NewConnectRedis parses cfg.URL, connects and pings the server.
func NewConnectRedis(ctx context.Context, cfg config.ClientRedis, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("invalid redis url")
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectRedis").Str("addr", opts.Addr).Msg("connected to redis successfully")

	return client, nil
}

type lastUserRedisRepository struct {
	client *redis.Client
	key    string
	logger *logger.Logger
}

// NewLastUserRedisRepository returns a [LastUserRepository] that keeps the id
// under [LastUserKey].
func NewLastUserRedisRepository(client *redis.Client, logger *logger.Logger) LastUserRepository {
	return &lastUserRedisRepository{
		client: client,
		key:    LastUserKey,
		logger: logger,
	}
}

func (r *lastUserRedisRepository) SaveLastUserID(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	if err := r.client.Set(ctx, r.key, userID, 0).Err(); err != nil {
		r.logger.Err(err).
			Str("func", "lastUserRedisRepository.SaveLastUserID").
			Int64("user_id", userID).
			Msg("failed to set last user id")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return nil
}

func (r *lastUserRedisRepository) GetLastUserID(ctx context.Context) (int64, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrLastUserNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "lastUserRedisRepository.GetLastUserID").
			Msg("failed to get last user id")
		return 0, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrCorruptedValue, raw)
	}

	return userID, nil
}

func (r *lastUserRedisRepository) ClearLastUserID(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Err(err).
			Str("func", "lastUserRedisRepository.ClearLastUserID").
			Msg("failed to delete last user id")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return nil
}

package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// go-redis returns the -2 and -1 PTTL replies unscaled.
const (
	pttlMissing  time.Duration = -2
	pttlNoExpiry time.Duration = -1

	acquireAttempts = 2
)

// ErrNoExpiry is returned when a cooldown key exists in redis without a ttl,
// usually because something other than the store wrote it.
var ErrNoExpiry = errors.New("cooldown key has no expiry")

var errKeyExpiring = errors.New("cooldown key kept expiring while acquiring")

// RedisStore keeps cooldowns in redis so they are shared between processes.
// Keys expire on their own through PX.
type RedisStore struct {
	Logger zerolog.Logger

	redisClient *redis.Client
	prefix      string
}

// RedisOptions configures NewRedisStore.
type RedisOptions struct {
	Address  string
	Password string
	Prefix   string
	DB       int
}

// NewRedisStore connects to redis and checks the connection with a ping.
func NewRedisStore(ctx context.Context, options RedisOptions, logger zerolog.Logger) (*RedisStore, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     options.Address,
		Password: options.Password,
		DB:       options.DB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()

		return nil, fmt.Errorf("cooldown redis ping: %w", err)
	}

	return NewRedisStoreFromClient(redisClient, options.Prefix, logger), nil
}

func NewRedisStoreFromClient(redisClient *redis.Client, prefix string, logger zerolog.Logger) *RedisStore {
	if prefix == "" {
		prefix = "swyft:cooldown"
	}

	return &RedisStore{
		Logger:      logger.With().Str("component", "cooldown").Logger(),
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (r *RedisStore) key(key string) string {
	return r.prefix + ":" + key
}

func (r *RedisStore) Acquire(ctx context.Context, key string, duration time.Duration) (bool, time.Duration, error) {
	if err := validate(key, duration); err != nil {
		return false, 0, err
	}

	if r.redisClient == nil {
		return false, 0, ErrStoreClosed
	}

	for attempt := 0; attempt < acquireAttempts; attempt++ {
		ok, err := r.redisClient.SetNX(ctx, r.key(key), 1, duration).Result()
		if err != nil {
			return false, 0, fmt.Errorf("cooldown acquire: %w", err)
		}

		if ok {
			return true, 0, nil
		}

		pttl, err := r.redisClient.PTTL(ctx, r.key(key)).Result()
		if err != nil {
			return false, 0, fmt.Errorf("cooldown ttl: %w", err)
		}

		remaining, retry, err := remainingTTL(pttl)
		if err != nil {
			r.Logger.Warn().Str("key", key).Err(err).Msg("Cooldown key is stuck")

			return false, 0, fmt.Errorf("cooldown %s: %w", key, err)
		}

		if !retry {
			return false, remaining, nil
		}

		r.Logger.Debug().Str("key", key).Int("attempt", attempt).Msg("Cooldown expired while reading ttl")
	}

	return false, 0, fmt.Errorf("cooldown %s: %w", key, errKeyExpiring)
}

// remainingTTL interprets a PTTL reply. -2 means the key went away after SETNX
// and the caller may retry. -1 means the key never expires.
func remainingTTL(pttl time.Duration) (remaining time.Duration, retry bool, err error) {
	switch {
	case pttl == pttlMissing:
		return 0, true, nil
	case pttl == pttlNoExpiry:
		return 0, false, ErrNoExpiry
	case pttl < 0:
		return 0, false, fmt.Errorf("unexpected ttl reply %d", pttl)
	default:
		return pttl, false, nil
	}
}

func (r *RedisStore) Reset(ctx context.Context, key string) error {
	if r.redisClient == nil {
		return ErrStoreClosed
	}

	if err := r.redisClient.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("cooldown reset: %w", err)
	}

	return nil
}

func (r *RedisStore) Close() error {
	if r.redisClient == nil {
		return nil
	}

	err := r.redisClient.Close()
	r.redisClient = nil

	return err
}

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore implements Store over a Redis backend. Every backend failure
// degrades to a no-op (miss on read, skip on write) with a warning log,
// so callers never see cache errors.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Logger   *zap.Logger
}

// NewRedisStore creates a new Redis-backed cache store. An unreachable
// Redis is not an error: the store is returned in degraded mode and the
// client reconnects on later operations.
func NewRedisStore(ctx context.Context, cfg *RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		cfg.Logger.Warn("redis-unreachable",
			zap.String("addr", cfg.Addr),
			zap.Error(err))
	} else {
		cfg.Logger.Info("redis-connected", zap.String("addr", cfg.Addr))
	}

	return &RedisStore{
		client: client,
		logger: cfg.Logger,
	}
}

// Set stores a payload under key. A non-positive ttl stores without
// expiry.
func (r *RedisStore) Set(ctx context.Context, key string, payload string, ttl time.Duration) {
	if ttl < 0 {
		ttl = 0 // redis treats 0 as "no expiry"
	}

	err := r.client.Set(ctx, key, payload, ttl).Err()
	if err != nil {
		CacheErrorsTotal.WithLabelValues("set").Inc()
		r.logger.Warn("cache-set-skipped",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	CacheSetsTotal.Inc()
	r.logger.Debug("cache-set",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
}

// Get retrieves the payload stored under key.
func (r *RedisStore) Get(ctx context.Context, key string) Lookup {
	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			CacheErrorsTotal.WithLabelValues("get").Inc()
			r.logger.Warn("cache-get-degraded",
				zap.String("key", key),
				zap.Error(err))
		}
		CacheMissesTotal.Inc()
		r.logger.Debug("cache-miss", zap.String("key", key))
		return Miss()
	}

	CacheHitsTotal.Inc()
	r.logger.Debug("cache-hit", zap.String("key", key))
	return Hit(payload)
}

// FlushAll unconditionally removes every entry.
func (r *RedisStore) FlushAll(ctx context.Context) {
	err := r.client.FlushAll(ctx).Err()
	if err != nil {
		CacheErrorsTotal.WithLabelValues("flush").Inc()
		r.logger.Warn("cache-flush-skipped", zap.Error(err))
		return
	}

	CacheFlushesTotal.Inc()
	r.logger.Info("cache-flushed")
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	r.logger.Info("closing-redis-store")
	return r.client.Close()
}

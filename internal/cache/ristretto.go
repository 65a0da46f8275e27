package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// RistrettoStore implements Store with an in-process Ristretto cache, for
// deployments without a Redis to talk to. Entries live and die with the
// process.
type RistrettoStore struct {
	cache  *ristretto.Cache
	logger *zap.Logger
}

// RistrettoConfig holds configuration for the in-process cache.
type RistrettoConfig struct {
	NumCounters int64 // number of keys to track frequency (10x max items)
	MaxCost     int64 // maximum number of items
	BufferItems int64 // number of keys per Get buffer
	Logger      *zap.Logger
}

// NewRistrettoStore creates a new in-process cache store.
func NewRistrettoStore(cfg *RistrettoConfig) (*RistrettoStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoStore{
		cache:  cache,
		logger: cfg.Logger,
	}, nil
}

// Set stores a payload under key. A non-positive ttl stores without
// expiry. Ristretto buffers writes, so Set waits for the entry to land;
// read-through callers expect their own writes to be visible.
func (r *RistrettoStore) Set(ctx context.Context, key string, payload string, ttl time.Duration) {
	var ok bool
	if ttl > 0 {
		ok = r.cache.SetWithTTL(key, payload, 1, ttl)
	} else {
		ok = r.cache.Set(key, payload, 1)
	}
	if !ok {
		CacheErrorsTotal.WithLabelValues("set").Inc()
		r.logger.Warn("cache-set-skipped", zap.String("key", key))
		return
	}
	r.cache.Wait()

	CacheSetsTotal.Inc()
	r.logger.Debug("cache-set",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
}

// Get retrieves the payload stored under key.
func (r *RistrettoStore) Get(ctx context.Context, key string) Lookup {
	value, found := r.cache.Get(key)
	if !found {
		CacheMissesTotal.Inc()
		r.logger.Debug("cache-miss", zap.String("key", key))
		return Miss()
	}

	payload, ok := value.(string)
	if !ok {
		// Only string payloads are ever stored; anything else is a bug.
		CacheErrorsTotal.WithLabelValues("get").Inc()
		r.logger.Warn("cache-get-degraded", zap.String("key", key))
		return Miss()
	}

	CacheHitsTotal.Inc()
	r.logger.Debug("cache-hit", zap.String("key", key))
	return Hit(payload)
}

// FlushAll unconditionally removes every entry.
func (r *RistrettoStore) FlushAll(ctx context.Context) {
	r.cache.Clear()
	CacheFlushesTotal.Inc()
	r.logger.Info("cache-flushed")
}

// Close releases the cache's resources.
func (r *RistrettoStore) Close() error {
	r.cache.Close()
	r.logger.Info("closing-ristretto-store")
	return nil
}

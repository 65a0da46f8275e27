package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// NopStore implements Store with no backend at all: every read misses and
// every write is dropped. Used when caching is disabled; the service then
// answers every request straight from the trading store.
type NopStore struct {
	logger *zap.Logger
}

// NewNopStore creates a cache store that caches nothing.
func NewNopStore(logger *zap.Logger) *NopStore {
	logger.Info("cache-disabled")
	return &NopStore{logger: logger}
}

// Set drops the payload.
func (n *NopStore) Set(ctx context.Context, key string, payload string, ttl time.Duration) {}

// Get always misses.
func (n *NopStore) Get(ctx context.Context, key string) Lookup {
	CacheMissesTotal.Inc()
	return Miss()
}

// FlushAll is a no-op.
func (n *NopStore) FlushAll(ctx context.Context) {}

// Close is a no-op.
func (n *NopStore) Close() error {
	return nil
}

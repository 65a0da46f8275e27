package repository

import (
	"context"
	"time"

	"github.com/mselser95/trading-results/internal/cache"
	"github.com/mselser95/trading-results/internal/schedule"
	"github.com/mselser95/trading-results/internal/store"
	"github.com/mselser95/trading-results/internal/trading"
	"go.uber.org/zap"
)

// TradingRepository wraps the trading store with a read-through cache.
//
// Every operation follows the same protocol: build a deterministic key
// from the operation name and all filter parameters, try the cache,
// decode on a hit, and on a miss (or corrupt hit) query the store and
// populate the cache with a TTL that expires at the next daily cutover.
// A payload that fails to decode flushes the entire cache, not just its
// own key: corruption usually means a schema change that affects every
// entry.
//
// Store errors are not recovered here; they propagate to the caller.
type TradingRepository struct {
	store   store.TradingStore
	cache   cache.Store
	cutover schedule.Cutover
	logger  *zap.Logger
	now     func() time.Time
}

// Config holds repository configuration.
type Config struct {
	Store   store.TradingStore
	Cache   cache.Store
	Cutover schedule.Cutover
	Logger  *zap.Logger
	Now     func() time.Time // defaults to time.Now
}

// New creates a new cached trading repository.
func New(cfg *Config) *TradingRepository {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &TradingRepository{
		store:   cfg.Store,
		cache:   cfg.Cache,
		cutover: cfg.Cutover,
		logger:  cfg.Logger,
		now:     now,
	}
}

// LastTradingDates returns the most recent distinct trade dates.
func (r *TradingRepository) LastTradingDates(ctx context.Context, limit int) ([]trading.Date, error) {
	key := lastTradingDatesKey(limit)

	if payload, ok := r.cache.Get(ctx, key).Payload(); ok {
		dates, err := cache.DecodeDates(payload)
		if err == nil {
			return dates, nil
		}
		r.recoverCorruption(ctx, key, err)
	}

	dates, err := r.store.LastTradingDates(ctx, limit)
	if err != nil {
		return nil, err
	}

	payload, err := cache.EncodeDates(dates)
	if err != nil {
		r.logger.Error("cache-encode-failed", zap.String("key", key), zap.Error(err))
		return dates, nil
	}
	r.cache.Set(ctx, key, payload, r.ttl())

	return dates, nil
}

// Dynamics returns all trade records matching the filter.
func (r *TradingRepository) Dynamics(ctx context.Context, f trading.DynamicsFilter) ([]trading.TradingResult, error) {
	key := dynamicsKey(f)

	if payload, ok := r.cache.Get(ctx, key).Payload(); ok {
		results, err := cache.DecodeResults(payload)
		if err == nil {
			return results, nil
		}
		r.recoverCorruption(ctx, key, err)
	}

	results, err := r.store.Dynamics(ctx, f)
	if err != nil {
		return nil, err
	}

	r.populate(ctx, key, results)
	return results, nil
}

// TradingResults returns the most recent trade records matching the
// filter.
func (r *TradingRepository) TradingResults(ctx context.Context, f trading.ResultsFilter, limit int) ([]trading.TradingResult, error) {
	key := tradingResultsKey(f, limit)

	if payload, ok := r.cache.Get(ctx, key).Payload(); ok {
		results, err := cache.DecodeResults(payload)
		if err == nil {
			return results, nil
		}
		r.recoverCorruption(ctx, key, err)
	}

	results, err := r.store.TradingResults(ctx, f, limit)
	if err != nil {
		return nil, err
	}

	r.populate(ctx, key, results)
	return results, nil
}

// populate encodes results and writes them under key with a TTL that
// expires at the next cutover.
func (r *TradingRepository) populate(ctx context.Context, key string, results []trading.TradingResult) {
	payload, err := cache.EncodeResults(results)
	if err != nil {
		r.logger.Error("cache-encode-failed", zap.String("key", key), zap.Error(err))
		return
	}
	r.cache.Set(ctx, key, payload, r.ttl())
}

// recoverCorruption handles a cached payload that failed to decode: the
// whole cache is flushed and the caller falls through to a store read.
func (r *TradingRepository) recoverCorruption(ctx context.Context, key string, err error) {
	CorruptPayloadsTotal.Inc()
	r.logger.Error("cache-corrupt-flushing-all",
		zap.String("key", key),
		zap.Error(err))
	r.cache.FlushAll(ctx)
}

// ttl is the advisory per-entry expiry. The scheduler force-expires
// everything at cutover anyway, but each entry's own TTL must still never
// outlive it. A write racing a flush computes its TTL from the cutover
// after the flush, so the entry survives exactly until then.
func (r *TradingRepository) ttl() time.Duration {
	return r.cutover.Until(r.now())
}

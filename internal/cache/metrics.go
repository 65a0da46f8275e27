package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trading_cache_hits_total",
		Help: "Total number of cache hits",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trading_cache_misses_total",
		Help: "Total number of cache misses",
	})

	CacheSetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trading_cache_sets_total",
		Help: "Total number of cache sets",
	})

	CacheFlushesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trading_cache_flushes_total",
		Help: "Total number of full cache flushes",
	})

	CacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trading_cache_errors_total",
		Help: "Total number of cache backend errors, degraded to no-ops",
	}, []string{"op"})
)

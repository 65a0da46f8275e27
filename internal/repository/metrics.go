package repository

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// CorruptPayloadsTotal tracks cached payloads that failed to decode,
	// each of which triggers a full cache flush.
	CorruptPayloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trading_cache_corrupt_payloads_total",
		Help: "Total number of corrupt cache payloads detected",
	})
)

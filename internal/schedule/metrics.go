package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// ScheduledFlushesTotal tracks flushes fired by the daily scheduler.
	ScheduledFlushesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trading_scheduled_flushes_total",
		Help: "Total number of scheduled daily cache flushes",
	})
)

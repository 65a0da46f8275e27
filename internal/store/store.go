package store

import (
	"context"

	"github.com/mselser95/trading-results/internal/trading"
)

// TradingStore is the interface for querying trading records.
type TradingStore interface {
	// LastTradingDates returns distinct trade dates, descending, limited.
	LastTradingDates(ctx context.Context, limit int) ([]trading.Date, error)

	// Dynamics returns records matching the filter, descending by date.
	Dynamics(ctx context.Context, f trading.DynamicsFilter) ([]trading.TradingResult, error)

	// TradingResults returns records matching the filter, descending by
	// date, limited.
	TradingResults(ctx context.Context, f trading.ResultsFilter, limit int) ([]trading.TradingResult, error)

	// Close closes the store connection.
	Close() error
}

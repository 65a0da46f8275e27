package trading

import (
	"context"

	"go.uber.org/zap"
)

// Queries is the set of read operations the service delegates to. The
// cached repository satisfies it.
type Queries interface {
	// LastTradingDates returns the most recent distinct trade dates,
	// descending, at most limit entries.
	LastTradingDates(ctx context.Context, limit int) ([]Date, error)

	// Dynamics returns all trade records matching the filter, descending
	// by date, unlimited.
	Dynamics(ctx context.Context, f DynamicsFilter) ([]TradingResult, error)

	// TradingResults returns the most recent trade records matching the
	// filter, descending by date, at most limit entries.
	TradingResults(ctx context.Context, f ResultsFilter, limit int) ([]TradingResult, error)
}

// Service is the seam the HTTP layer depends on. It delegates each
// operation to the repository so the repository can be tested without
// transport concerns.
type Service struct {
	queries Queries
	logger  *zap.Logger
}

// NewService creates a new trading service.
func NewService(queries Queries, logger *zap.Logger) *Service {
	return &Service{
		queries: queries,
		logger:  logger,
	}
}

// GetLastTradingDates returns the dates of the most recent trading days.
func (s *Service) GetLastTradingDates(ctx context.Context, limit int) ([]Date, error) {
	s.logger.Debug("service-last-trading-dates", zap.Int("limit", limit))
	return s.queries.LastTradingDates(ctx, limit)
}

// GetDynamics returns trade records over a period with optional filters.
func (s *Service) GetDynamics(ctx context.Context, f DynamicsFilter) ([]TradingResult, error) {
	s.logger.Debug("service-dynamics",
		zap.String("oil-id", f.OilID),
		zap.String("delivery-type-id", f.DeliveryTypeID),
		zap.String("delivery-basis-id", f.DeliveryBasisID))
	return s.queries.Dynamics(ctx, f)
}

// GetTradingResults returns the most recent trade records for a product.
func (s *Service) GetTradingResults(ctx context.Context, f ResultsFilter, limit int) ([]TradingResult, error) {
	s.logger.Debug("service-trading-results",
		zap.String("oil-id", f.OilID),
		zap.Int("limit", limit))
	return s.queries.TradingResults(ctx, f, limit)
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/mselser95/trading-results/internal/trading"
	"go.uber.org/zap"
)

// PostgresStore implements TradingStore over the trading_results table.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

const resultColumns = `id, exchange_product_id, exchange_product_name, oil_id, delivery_basis_id, delivery_basis_name, delivery_type_id, volume, total, count, date`

// NewPostgresStore creates a new PostgreSQL trading store.
func NewPostgresStore(cfg *PostgresConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-store-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStore{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// LastTradingDates returns the distinct dates of the most recent trading
// days, newest first.
func (p *PostgresStore) LastTradingDates(ctx context.Context, limit int) ([]trading.Date, error) {
	query := `SELECT DISTINCT date FROM trading_results ORDER BY date DESC LIMIT $1`

	rows, err := p.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query last trading dates: %w", err)
	}
	defer rows.Close()

	var dates []trading.Date
	for rows.Next() {
		var d trading.Date
		err = rows.Scan(&d.Time)
		if err != nil {
			return nil, fmt.Errorf("scan trading date: %w", err)
		}
		dates = append(dates, d)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate trading dates: %w", err)
	}

	p.logger.Debug("last-trading-dates-queried", zap.Int("count", len(dates)))
	return dates, nil
}

// Dynamics returns every record matching the filter, newest first. Absent
// filter fields impose no constraint.
func (p *PostgresStore) Dynamics(ctx context.Context, f trading.DynamicsFilter) ([]trading.TradingResult, error) {
	var (
		conds []string
		args  []interface{}
	)
	addCond := func(expr string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.OilID != "" {
		addCond("oil_id = $%d", f.OilID)
	}
	if f.DeliveryTypeID != "" {
		addCond("delivery_type_id = $%d", f.DeliveryTypeID)
	}
	if f.DeliveryBasisID != "" {
		addCond("delivery_basis_id = $%d", f.DeliveryBasisID)
	}
	if f.StartDate != nil {
		addCond("date >= $%d", f.StartDate.Time)
	}
	if f.EndDate != nil {
		addCond("date <= $%d", f.EndDate.Time)
	}

	query := `SELECT ` + resultColumns + ` FROM trading_results`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dynamics: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("dynamics-queried",
		zap.Int("filters", len(conds)),
		zap.Int("count", len(results)))
	return results, nil
}

// TradingResults returns the most recent records for a product, newest
// first, at most limit rows.
func (p *PostgresStore) TradingResults(ctx context.Context, f trading.ResultsFilter, limit int) ([]trading.TradingResult, error) {
	query := `SELECT ` + resultColumns + ` FROM trading_results` +
		` WHERE oil_id = $1 AND delivery_type_id = $2 AND delivery_basis_id = $3` +
		` ORDER BY date DESC LIMIT $4`

	rows, err := p.db.QueryContext(ctx, query,
		f.OilID, f.DeliveryTypeID, f.DeliveryBasisID, limit)
	if err != nil {
		return nil, fmt.Errorf("query trading results: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("trading-results-queried",
		zap.String("oil-id", f.OilID),
		zap.Int("count", len(results)))
	return results, nil
}

// Close closes the database connection.
func (p *PostgresStore) Close() error {
	p.logger.Info("closing-postgres-store")
	return p.db.Close()
}

// scanResults maps raw rows onto TradingResult values.
func scanResults(rows *sql.Rows) ([]trading.TradingResult, error) {
	var results []trading.TradingResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate trading results: %w", err)
	}
	return results, nil
}

// scanResult maps a single row onto a TradingResult. Pure column-order
// mapping; malformed rows surface as a scan error.
func scanResult(rows *sql.Rows) (trading.TradingResult, error) {
	var r trading.TradingResult
	err := rows.Scan(
		&r.ID,
		&r.ExchangeProductID,
		&r.ExchangeProductName,
		&r.OilID,
		&r.DeliveryBasisID,
		&r.DeliveryBasisName,
		&r.DeliveryTypeID,
		&r.Volume,
		&r.Total,
		&r.Count,
		&r.Date.Time,
	)
	if err != nil {
		return trading.TradingResult{}, fmt.Errorf("scan trading result: %w", err)
	}
	return r, nil
}

package app

import (
	"context"
	"fmt"

	"github.com/mselser95/trading-results/internal/cache"
	"github.com/mselser95/trading-results/internal/repository"
	"github.com/mselser95/trading-results/internal/schedule"
	"github.com/mselser95/trading-results/internal/store"
	"github.com/mselser95/trading-results/internal/trading"
	"github.com/mselser95/trading-results/pkg/config"
	"github.com/mselser95/trading-results/pkg/healthprobe"
	"github.com/mselser95/trading-results/pkg/httpserver"
	"go.uber.org/zap"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	healthChecker := healthprobe.New()

	cacheStore, err := setupCache(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	tradingStore, err := setupStore(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup store: %w", err)
	}

	cutover := schedule.Cutover{Hour: cfg.FlushHour, Minute: cfg.FlushMinute}

	repo := repository.New(&repository.Config{
		Store:   tradingStore,
		Cache:   cacheStore,
		Cutover: cutover,
		Logger:  logger,
	})

	service := trading.NewService(repo, logger)
	scheduler := schedule.NewScheduler(cutover, cacheStore, logger)

	httpServer := httpserver.New(&httpserver.Config{
		Port:          cfg.HTTPPort,
		Logger:        logger,
		HealthChecker: healthChecker,
		Service:       service,
	})

	return &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthChecker,
		httpServer:    httpServer,
		cacheStore:    cacheStore,
		tradingStore:  tradingStore,
		scheduler:     scheduler,
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

func setupCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	switch cfg.CacheMode {
	case config.CacheModeRedis:
		return cache.NewRedisStore(ctx, &cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Logger:   logger,
		}), nil
	case config.CacheModeMemory:
		return cache.NewRistrettoStore(&cache.RistrettoConfig{
			NumCounters: 10000, // 10x expected max entries
			MaxCost:     1000,  // maximum 1000 cached query results
			BufferItems: 64,
			Logger:      logger,
		})
	default:
		return cache.NewNopStore(logger), nil
	}
}

func setupStore(cfg *config.Config, logger *zap.Logger) (store.TradingStore, error) {
	pgStore, err := store.NewPostgresStore(&store.PostgresConfig{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPass,
		Database: cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSL,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgres store: %w", err)
	}
	return pgStore, nil
}

package app

import (
	"context"
	"sync"

	"github.com/mselser95/trading-results/internal/cache"
	"github.com/mselser95/trading-results/internal/schedule"
	"github.com/mselser95/trading-results/internal/store"
	"github.com/mselser95/trading-results/pkg/config"
	"github.com/mselser95/trading-results/pkg/healthprobe"
	"github.com/mselser95/trading-results/pkg/httpserver"
	"go.uber.org/zap"
)

// App is the main application orchestrator.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server
	cacheStore    cache.Store
	tradingStore  store.TradingStore
	scheduler     *schedule.Scheduler
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

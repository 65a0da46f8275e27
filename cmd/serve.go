package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mselser95/trading-results/internal/app"
	"github.com/mselser95/trading-results/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the trading results API server",
	Long: `Starts the HTTP server exposing the trading results queries:
/get_last_trading_dates, /get_dynamics and /get_trading_results,
plus /metrics, /health and /ready.

Also starts the background scheduler that flushes the whole cache
once per day at the configured cutover time (default 14:11 local).`,
	RunE: runServer,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	// Optional .env file
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	err = application.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	return nil
}

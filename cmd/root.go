package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "trading-results",
	Short: "Market trading results API",
	Long: `Market trading results API serving filtered, time-ordered trade
records from PostgreSQL, accelerated by a read-through cache that is
flushed in full once per day at a fixed wall-clock cutover time.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

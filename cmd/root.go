package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/config"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ecomdata [command]",
	Short: "Synthetic e-commerce dataset toolkit: generate, ingest, analyze",
	Long: `Generates a referentially consistent synthetic e-commerce dataset as CSV files,
loads it into an embedded SQLite database with enforced constraints, and runs
a fixed catalog of analytical join queries producing tabular reports.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: the file at path when
// given, built-in defaults otherwise. Flag overrides are applied by the
// individual commands afterwards.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func initLogging(cfg *config.Config) {
	logger.Init("ecomdata", cfg.Logging.Level)
}

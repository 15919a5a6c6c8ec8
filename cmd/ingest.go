package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/csvio"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/store"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/pkg/logger"
)

type ingestFlags struct {
	configFile string
	dataDir    string
	dbPath     string
}

var ingestCfg ingestFlags

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the generated CSV files into the SQLite database",
	Long: `Reads the CSV exports produced by "generate", drops and recreates the
five-table schema with primary and foreign key constraints, and loads all
rows in a single transaction in dependency order. Any constraint violation
aborts the whole load; re-running always rebuilds the database from scratch.`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestCfg.configFile, "config", "", "Path to YAML config file")
	ingestCmd.Flags().StringVar(&ingestCfg.dataDir, "data-dir", "", "Directory containing the CSV files (default \"data\")")
	ingestCmd.Flags().StringVar(&ingestCfg.dbPath, "db", "", "Path to the SQLite database file (default \"ecommerce.db\")")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(ingestCfg.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.Data.Dir = ingestCfg.dataDir
	}
	if cmd.Flags().Changed("db") {
		cfg.Database.Path = ingestCfg.dbPath
	}

	initLogging(cfg)

	if _, err := os.Stat(cfg.Data.Dir); os.IsNotExist(err) {
		return fmt.Errorf("data directory not found: %s (run generate first)", cfg.Data.Dir)
	}

	logger.Info().Str("dir", cfg.Data.Dir).Msg("reading CSV files")
	ds, err := csvio.ReadDataset(cfg.Data.Dir)
	if err != nil {
		return err
	}
	logger.Info().Int("rows", len(ds.Customers)).Msg("loaded customers")
	logger.Info().Int("rows", len(ds.Products)).Msg("loaded products")
	logger.Info().Int("rows", len(ds.Orders)).Msg("loaded orders")
	logger.Info().Int("rows", len(ds.OrderItems)).Msg("loaded order_items")
	logger.Info().Int("rows", len(ds.Reviews)).Msg("loaded reviews")

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info().Msg("resetting schema")
	if err := store.ResetSchema(db); err != nil {
		return err
	}

	logger.Info().Msg("importing dataset")
	if _, err := store.ImportDataset(db, ds); err != nil {
		return fmt.Errorf("import aborted, no rows committed: %w", err)
	}

	counts, err := store.TableCounts(db)
	if err != nil {
		return err
	}
	for _, tmpl := range store.Tables() {
		logger.Info().Str("table", tmpl.Name).Int("rows", counts[tmpl.Name]).Msg("committed")
	}
	logger.Info().Str("db", cfg.Database.Path).Msg("ingestion complete")

	return nil
}

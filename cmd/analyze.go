package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/report"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/store"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/pkg/logger"
)

type analyzeFlags struct {
	configFile string
	dbPath     string
	resultsDir string
}

var analyzeCfg analyzeFlags

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analytical report catalog against the database",
	Long: `Executes the fixed catalog of analytical join queries against the populated
database, prints each result set as a formatted table, exports each as a CSV
file under the results directory, and writes a JSON run summary. A failing
report does not stop the rest of the catalog.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeCfg.configFile, "config", "", "Path to YAML config file")
	analyzeCmd.Flags().StringVar(&analyzeCfg.dbPath, "db", "", "Path to the SQLite database file (default \"ecommerce.db\")")
	analyzeCmd.Flags().StringVar(&analyzeCfg.resultsDir, "results-dir", "", "Output directory for report CSVs (default \"results\")")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(analyzeCfg.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Database.Path = analyzeCfg.dbPath
	}
	if cmd.Flags().Changed("results-dir") {
		cfg.Results.Dir = analyzeCfg.resultsDir
	}

	initLogging(cfg)

	if _, err := os.Stat(cfg.Database.Path); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s (run generate and ingest first)", cfg.Database.Path)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	catalog := report.Catalog()
	summary := report.Summary{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
		Total:     len(catalog),
	}

	logger.Info().Str("run_id", summary.RunID).Int("reports", len(catalog)).Msg("starting analysis")

	for _, r := range catalog {
		logger.Info().Str("report", r.Name).Str("description", r.Description).Msg("running report")

		res, err := report.Run(db, r)
		if err != nil {
			logger.Error().Str("report", r.Name).Err(err).Msg("report failed")
			summary.Failed++
			summary.Reports = append(summary.Reports, report.ReportRun{
				Name:         r.Name,
				Status:       "failed",
				ErrorMessage: err.Error(),
			})
			continue
		}

		fmt.Printf("\n%s: %s\n", r.Name, r.Description)
		if len(res.Rows) == 0 {
			fmt.Println("No records found for this report.")
		} else {
			res.Render(os.Stdout)
		}

		path, err := res.WriteCSV(cfg.Results.Dir)
		if err != nil {
			logger.Error().Str("report", r.Name).Err(err).Msg("export failed")
			summary.Failed++
			summary.Reports = append(summary.Reports, report.ReportRun{
				Name:         r.Name,
				Status:       "failed",
				Rows:         len(res.Rows),
				DurationSecs: res.Duration.Seconds(),
				ErrorMessage: err.Error(),
			})
			continue
		}

		logger.Info().
			Str("report", r.Name).
			Int("rows", len(res.Rows)).
			Float64("seconds", res.Duration.Seconds()).
			Str("csv", path).
			Msg("report complete")

		summary.Succeeded++
		summary.Reports = append(summary.Reports, report.ReportRun{
			Name:         r.Name,
			Status:       "success",
			Rows:         len(res.Rows),
			DurationSecs: res.Duration.Seconds(),
		})
	}

	summary.EndTime = time.Now()
	summary.DurationSecs = summary.EndTime.Sub(summary.StartTime).Seconds()

	fmt.Println("\nSummary of executed reports:")
	summary.Render(os.Stdout)

	if path, err := summary.WriteJSON(cfg.Results.Dir); err != nil {
		logger.Warn().Err(err).Msg("failed to write run summary")
	} else {
		logger.Info().Str("summary", path).Msg("analysis complete")
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d reports failed", summary.Failed, summary.Total)
	}
	return nil
}

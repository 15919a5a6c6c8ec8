package cmd

import (
	"github.com/spf13/cobra"

	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/csvio"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/internal/dataset"
	"github.com/EekshaHollaR/ecommerce-database-cursor-ai/pkg/logger"
)

type genFlags struct {
	configFile string
	dataDir    string
	seed       int64
	customers  int
	products   int
	orders     int
	minItems   int
	maxItems   int
	reviews    int
}

var genCfg genFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic e-commerce dataset as CSV files",
	Long: `Synthesizes customers, products, orders, order items, and reviews with
intact referential integrity: every foreign key resolves, order totals equal
the sum of their item subtotals, and review dates never precede the reviewed
product's creation or the reviewer's registration. Output is one CSV file per
entity under the data directory. The same seed always produces the same data.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genCfg.configFile, "config", "", "Path to YAML config file")
	generateCmd.Flags().StringVar(&genCfg.dataDir, "data-dir", "", "Output directory for CSV files (default \"data\")")
	generateCmd.Flags().Int64Var(&genCfg.seed, "seed", 0, "Random seed for reproducible output (default 42)")
	generateCmd.Flags().IntVar(&genCfg.customers, "customers", 0, "Number of customers (default 1000)")
	generateCmd.Flags().IntVar(&genCfg.products, "products", 0, "Number of products (default 500)")
	generateCmd.Flags().IntVar(&genCfg.orders, "orders", 0, "Number of orders (default 2000)")
	generateCmd.Flags().IntVar(&genCfg.minItems, "min-items", 0, "Minimum items per order (default 1)")
	generateCmd.Flags().IntVar(&genCfg.maxItems, "max-items", 0, "Maximum items per order (default 5)")
	generateCmd.Flags().IntVar(&genCfg.reviews, "reviews", 0, "Number of reviews (default 1500)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(genCfg.configFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.Data.Dir = genCfg.dataDir
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genCfg.seed
	}
	if cmd.Flags().Changed("customers") {
		cfg.Generate.Customers = genCfg.customers
	}
	if cmd.Flags().Changed("products") {
		cfg.Generate.Products = genCfg.products
	}
	if cmd.Flags().Changed("orders") {
		cfg.Generate.Orders = genCfg.orders
	}
	if cmd.Flags().Changed("min-items") {
		cfg.Generate.MinItemsPerOrder = genCfg.minItems
	}
	if cmd.Flags().Changed("max-items") {
		cfg.Generate.MaxItemsPerOrder = genCfg.maxItems
	}
	if cmd.Flags().Changed("reviews") {
		cfg.Generate.Reviews = genCfg.reviews
	}

	initLogging(cfg)

	params := dataset.Params{
		Customers:        cfg.Generate.Customers,
		Products:         cfg.Generate.Products,
		Orders:           cfg.Generate.Orders,
		MinItemsPerOrder: cfg.Generate.MinItemsPerOrder,
		MaxItemsPerOrder: cfg.Generate.MaxItemsPerOrder,
		Reviews:          cfg.Generate.Reviews,
	}

	logger.Info().
		Int64("seed", cfg.Generate.Seed).
		Int("customers", params.Customers).
		Int("products", params.Products).
		Int("orders", params.Orders).
		Int("min_items_per_order", params.MinItemsPerOrder).
		Int("max_items_per_order", params.MaxItemsPerOrder).
		Int("reviews", params.Reviews).
		Msg("generating dataset")

	ds, err := dataset.New(cfg.Generate.Seed).Build(params)
	if err != nil {
		return err
	}

	if err := csvio.WriteDataset(cfg.Data.Dir, ds); err != nil {
		return err
	}

	logger.Info().Str("file", csvio.CustomersFile).Int("records", len(ds.Customers)).Msg("saved")
	logger.Info().Str("file", csvio.ProductsFile).Int("records", len(ds.Products)).Msg("saved")
	logger.Info().Str("file", csvio.OrdersFile).Int("records", len(ds.Orders)).Msg("saved")
	logger.Info().Str("file", csvio.OrderItemsFile).Int("records", len(ds.OrderItems)).Msg("saved")
	logger.Info().Str("file", csvio.ReviewsFile).Int("records", len(ds.Reviews)).Msg("saved")
	logger.Info().Str("dir", cfg.Data.Dir).Msg("generation complete")

	return nil
}

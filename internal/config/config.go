package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the shared settings for all three stages. Flags override
// whatever is loaded here; see the cmd package.
type Config struct {
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Results struct {
		Dir string `yaml:"dir"`
	} `yaml:"results"`

	Generate struct {
		Seed             int64 `yaml:"seed"`
		Customers        int   `yaml:"customers"`
		Products         int   `yaml:"products"`
		Orders           int   `yaml:"orders"`
		MinItemsPerOrder int   `yaml:"min_items_per_order"`
		MaxItemsPerOrder int   `yaml:"max_items_per_order"`
		Reviews          int   `yaml:"reviews"`
	} `yaml:"generate"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file or flags are given.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Data.Dir = "data"
	cfg.Database.Path = "ecommerce.db"
	cfg.Results.Dir = "results"

	cfg.Generate.Seed = 42
	cfg.Generate.Customers = 1000
	cfg.Generate.Products = 500
	cfg.Generate.Orders = 2000
	cfg.Generate.MinItemsPerOrder = 1
	cfg.Generate.MaxItemsPerOrder = 5
	cfg.Generate.Reviews = 1500

	cfg.Logging.Level = "info"

	return cfg
}

// Load reads and parses a configuration file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that paths are set and generation counts are usable.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Results.Dir == "" {
		return fmt.Errorf("results.dir is required")
	}
	if c.Generate.Customers <= 0 {
		return fmt.Errorf("generate.customers must be positive, got %d", c.Generate.Customers)
	}
	if c.Generate.Products <= 0 {
		return fmt.Errorf("generate.products must be positive, got %d", c.Generate.Products)
	}
	if c.Generate.Orders <= 0 {
		return fmt.Errorf("generate.orders must be positive, got %d", c.Generate.Orders)
	}
	if c.Generate.Reviews <= 0 {
		return fmt.Errorf("generate.reviews must be positive, got %d", c.Generate.Reviews)
	}
	if c.Generate.MinItemsPerOrder <= 0 {
		return fmt.Errorf("generate.min_items_per_order must be positive, got %d", c.Generate.MinItemsPerOrder)
	}
	if c.Generate.MaxItemsPerOrder < c.Generate.MinItemsPerOrder {
		return fmt.Errorf("generate.max_items_per_order (%d) cannot be less than min_items_per_order (%d)",
			c.Generate.MaxItemsPerOrder, c.Generate.MinItemsPerOrder)
	}
	return nil
}

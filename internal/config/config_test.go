package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "ecommerce.db", cfg.Database.Path)
	assert.Equal(t, "results", cfg.Results.Dir)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.Equal(t, 1000, cfg.Generate.Customers)
	assert.Equal(t, 500, cfg.Generate.Products)
	assert.Equal(t, 2000, cfg.Generate.Orders)
	assert.Equal(t, 1, cfg.Generate.MinItemsPerOrder)
	assert.Equal(t, 5, cfg.Generate.MaxItemsPerOrder)
	assert.Equal(t, 1500, cfg.Generate.Reviews)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  dir: /tmp/ecom-data
generate:
  seed: 7
  customers: 10
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ecom-data", cfg.Data.Dir)
	assert.Equal(t, int64(7), cfg.Generate.Seed)
	assert.Equal(t, 10, cfg.Generate.Customers)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, "ecommerce.db", cfg.Database.Path)
	assert.Equal(t, 500, cfg.Generate.Products)
	assert.Equal(t, 5, cfg.Generate.MaxItemsPerOrder)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
generate:
  customers: -3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate.customers")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }, "data.dir"},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"empty results dir", func(c *Config) { c.Results.Dir = "" }, "results.dir"},
		{"zero orders", func(c *Config) { c.Generate.Orders = 0 }, "generate.orders"},
		{"zero reviews", func(c *Config) { c.Generate.Reviews = 0 }, "generate.reviews"},
		{"zero min items", func(c *Config) { c.Generate.MinItemsPerOrder = 0 }, "min_items_per_order"},
		{"max below min", func(c *Config) {
			c.Generate.MinItemsPerOrder = 4
			c.Generate.MaxItemsPerOrder = 2
		}, "max_items_per_order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

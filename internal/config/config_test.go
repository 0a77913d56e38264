package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/recbench.yaml")
	assert.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := `
dataset:
  size: 500
  seed: 9
  order: sorted
  delete_fraction: 0.25
queries:
  count: 20
bench:
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Dataset.Size)
	assert.Equal(t, int64(9), cfg.Dataset.Seed)
	assert.Equal(t, OrderSorted, cfg.Dataset.Order)
	assert.Equal(t, 0.25, cfg.Dataset.DeleteFraction)
	assert.Equal(t, 20, cfg.Queries.Count)
	assert.Equal(t, "debug", cfg.Bench.LogLevel)

	// untouched keys keep their defaults
	assert.Equal(t, 50, cfg.Queries.RangeWidth)
	assert.Equal(t, 32, cfg.Bench.BTreeDegree)
}

func TestLoadFillsZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := `
dataset:
  size: 0
  order: ""
bench:
  btree_degree: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Dataset.Size)
	assert.Equal(t, OrderRandom, cfg.Dataset.Order)
	assert.Equal(t, 32, cfg.Bench.BTreeDegree)
}

func TestValidate(t *testing.T) {
	dataSet := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"sorted", func(c *Config) { c.Dataset.Order = OrderSorted }, true},
		{"unknown order", func(c *Config) { c.Dataset.Order = "reverse" }, false},
		{"negative delete fraction", func(c *Config) { c.Dataset.DeleteFraction = -0.1 }, false},
		{"delete everything", func(c *Config) { c.Dataset.DeleteFraction = 1 }, false},
	}

	for _, d := range dataSet {
		cfg := Default()
		d.modify(cfg)
		err := cfg.Validate()
		if d.valid {
			assert.NoError(t, err, d.name)
		} else {
			assert.Error(t, err, d.name)
		}
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

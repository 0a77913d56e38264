package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Queries QueryConfig   `yaml:"queries"`
	Bench   BenchConfig   `yaml:"bench"`
}

type DatasetConfig struct {
	Size           int     `yaml:"size"`
	Seed           int64   `yaml:"seed"`
	Order          string  `yaml:"order"`           // random or sorted id insertion order
	DeleteFraction float64 `yaml:"delete_fraction"` // share of records deleted before querying
}

type QueryConfig struct {
	Count      int `yaml:"count"`       // queries per class
	RangeWidth int `yaml:"range_width"` // ids covered by one range query
	PrefixLen  int `yaml:"prefix_len"`
}

type BenchConfig struct {
	BTreeDegree int    `yaml:"btree_degree"`
	LogLevel    string `yaml:"log_level"` // debug, info, warn, error
}

const (
	OrderRandom = "random"
	OrderSorted = "sorted"
)

func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Size:           10000,
			Seed:           1,
			Order:          OrderRandom,
			DeleteFraction: 0.1,
		},
		Queries: QueryConfig{
			Count:      1000,
			RangeWidth: 50,
			PrefixLen:  2,
		},
		Bench: BenchConfig{
			BTreeDegree: 32,
			LogLevel:    "info",
		},
	}
}

// Load reads path over the defaults. An empty path looks for recbench.yaml
// in the working directory and falls back to defaults when it is missing.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		data, err := os.ReadFile("recbench.yaml")
		if err != nil {
			applyDefaults(cfg)
			return cfg, nil
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return cfg, fmt.Errorf("parse recbench.yaml: %w", err)
		}
		applyDefaults(cfg)
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, cfg.Validate()
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Dataset.Size <= 0 {
		cfg.Dataset.Size = def.Dataset.Size
	}
	if cfg.Dataset.Order == "" {
		cfg.Dataset.Order = def.Dataset.Order
	}
	if cfg.Queries.Count <= 0 {
		cfg.Queries.Count = def.Queries.Count
	}
	if cfg.Queries.RangeWidth <= 0 {
		cfg.Queries.RangeWidth = def.Queries.RangeWidth
	}
	if cfg.Queries.PrefixLen <= 0 {
		cfg.Queries.PrefixLen = def.Queries.PrefixLen
	}
	if cfg.Bench.BTreeDegree < 2 {
		cfg.Bench.BTreeDegree = def.Bench.BTreeDegree
	}
	if cfg.Bench.LogLevel == "" {
		cfg.Bench.LogLevel = def.Bench.LogLevel
	}
}

func (c *Config) Validate() error {
	switch c.Dataset.Order {
	case OrderRandom, OrderSorted:
	default:
		return fmt.Errorf("dataset.order: unknown order %q", c.Dataset.Order)
	}
	if c.Dataset.DeleteFraction < 0 || c.Dataset.DeleteFraction >= 1 {
		return fmt.Errorf("dataset.delete_fraction: %v not in [0, 1)", c.Dataset.DeleteFraction)
	}
	return nil
}

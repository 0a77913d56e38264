// Command recbench loads synthetic student records into a recstore engine
// and reports how many key comparisons its queries cost next to a B-tree
// holding the same keys.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/e11jah/recstore/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (default: ./recbench.yaml if present)")
	size := flag.Int("n", 0, "number of records (overrides dataset.size)")
	order := flag.String("order", "", "id insertion order: random or sorted (overrides dataset.order)")
	seed := flag.Int64("seed", 0, "random seed (overrides dataset.seed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recbench: %v\n", err)
		os.Exit(1)
	}
	if *size > 0 {
		cfg.Dataset.Size = *size
	}
	if *order != "" {
		cfg.Dataset.Order = *order
	}
	if *seed != 0 {
		cfg.Dataset.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "recbench: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Bench.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recbench: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	results, stats, err := run(cfg, logger)
	if err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}

	fmt.Printf("records=%d live=%d id_height=%d last_keys=%d last_height=%d\n",
		stats.HeapSlots, stats.Live, stats.IDHeight, stats.LastNameKeys, stats.LastNameHeight)
	fmt.Printf("%-8s %8s %8s %12s %12s\n", "class", "queries", "hits", "bst_avg", "btree_avg")
	for _, r := range results {
		fmt.Printf("%-8s %8d %8d %12.2f %12.2f\n", r.Class, r.Queries, r.Hits, r.bstAvg(), r.btreeAvg())
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// benchmarkConfig reflects an optional .toml input file configuring the
// workload size and shape. When no config file is present, defaultConfig
// is used instead.
type benchmarkConfig struct {
	Name       string
	N          int // elements present before the timed phase begins
	M          int // updates, then insertions, then deletions, per round
	Iterations int
}

func defaultConfig() *benchmarkConfig {
	return &benchmarkConfig{
		Name:       "default",
		N:          100000,
		M:          10,
		Iterations: 10,
	}
}

func loadConfig(path string) (*benchmarkConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	cfg := &benchmarkConfig{}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateConfig rejects a config whose workload dimensions can't be
// turned into a real run and fills in the one field (Iterations) that
// has a sensible zero-value default instead of being an outright error.
func validateConfig(cfg *benchmarkConfig) error {
	for _, dim := range []struct {
		name string
		val  int
	}{
		{"N", cfg.N},
		{"M", cfg.M},
		{"Iterations", cfg.Iterations},
	} {
		if dim.val < 0 {
			return fmt.Errorf("benchmark config: %s must not be negative, got %d", dim.name, dim.val)
		}
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = 1
	}
	return nil
}

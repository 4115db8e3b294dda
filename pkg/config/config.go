package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Index     IndexConfig     `yaml:"index"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Shell     ShellConfig     `yaml:"shell"`
}

type IndexConfig struct {
	Strategy string `yaml:"strategy"` // linear | sorted | bst
}

type BenchmarkConfig struct {
	Records     int     `yaml:"records"`
	Lookups     int     `yaml:"lookups"`
	AbsentRatio float64 `yaml:"absent_ratio"`
	Order       string  `yaml:"order"` // random | ascending | descending
	Seed        int64   `yaml:"seed"`
}

type ShellConfig struct {
	Color bool `yaml:"color"`
}

const (
	OrderRandom     = "random"
	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

var strategies = map[string]bool{"linear": true, "sorted": true, "bst": true}

func Default() *Config {
	return &Config{
		Index: IndexConfig{
			Strategy: "bst",
		},
		Benchmark: BenchmarkConfig{
			Records:     1000,
			Lookups:     1000,
			AbsentRatio: 0.1,
			Order:       OrderRandom,
			Seed:        42,
		},
		Shell: ShellConfig{
			Color: true,
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/studentdb.yaml", "studentdb.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// ApplyEnv loads envFile (if present) and overrides cfg with STUDENTDB_*
// variables. A missing env file is not an error.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return err
			}
		}
	}

	if v := os.Getenv("STUDENTDB_STRATEGY"); v != "" {
		cfg.Index.Strategy = v
	}
	if v, ok := envInt("STUDENTDB_BENCH_RECORDS"); ok {
		cfg.Benchmark.Records = v
	}
	if v, ok := envInt("STUDENTDB_BENCH_LOOKUPS"); ok {
		cfg.Benchmark.Lookups = v
	}
	if v := os.Getenv("STUDENTDB_BENCH_ORDER"); v != "" {
		cfg.Benchmark.Order = v
	}
	if v, ok := envInt("STUDENTDB_BENCH_SEED"); ok {
		cfg.Benchmark.Seed = int64(v)
	}
	if v := os.Getenv("STUDENTDB_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Shell.Color = b
		}
	}

	applyDefaults(cfg)
	return nil
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

func applyDefaults(cfg *Config) {
	cfg.Index.Strategy = strings.ToLower(strings.TrimSpace(cfg.Index.Strategy))
	if cfg.Index.Strategy == "tree" {
		cfg.Index.Strategy = "bst"
	}
	if !strategies[cfg.Index.Strategy] {
		cfg.Index.Strategy = "bst"
	}
	if cfg.Benchmark.Records <= 0 {
		cfg.Benchmark.Records = 1000
	}
	if cfg.Benchmark.Lookups <= 0 {
		cfg.Benchmark.Lookups = 1000
	}
	if cfg.Benchmark.AbsentRatio < 0 || cfg.Benchmark.AbsentRatio > 1 {
		cfg.Benchmark.AbsentRatio = 0.1
	}
	switch cfg.Benchmark.Order = strings.ToLower(cfg.Benchmark.Order); cfg.Benchmark.Order {
	case OrderRandom, OrderAscending, OrderDescending:
	default:
		cfg.Benchmark.Order = OrderRandom
	}
}

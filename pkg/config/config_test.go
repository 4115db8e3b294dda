package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/studentdb.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Index.Strategy != "bst" {
		t.Errorf("default strategy: got %s", cfg.Index.Strategy)
	}
	if cfg.Benchmark.Records != 1000 {
		t.Errorf("default records: got %d", cfg.Benchmark.Records)
	}
	if cfg.Benchmark.Order != OrderRandom {
		t.Errorf("default order: got %s", cfg.Benchmark.Order)
	}
	if !cfg.Shell.Color {
		t.Errorf("default color should be on")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
index:
  strategy: Sorted
benchmark:
  records: 250
  lookups: 0
  absent_ratio: 0.5
  order: descending
  seed: 7
shell:
  color: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Strategy != "sorted" {
		t.Errorf("strategy: got %s", cfg.Index.Strategy)
	}
	if cfg.Benchmark.Records != 250 {
		t.Errorf("records: got %d", cfg.Benchmark.Records)
	}
	if cfg.Benchmark.Lookups != 1000 {
		t.Errorf("lookups should fall back to default, got %d", cfg.Benchmark.Lookups)
	}
	if cfg.Benchmark.AbsentRatio != 0.5 {
		t.Errorf("absent_ratio: got %v", cfg.Benchmark.AbsentRatio)
	}
	if cfg.Benchmark.Order != OrderDescending || cfg.Benchmark.Seed != 7 {
		t.Errorf("order/seed: got %s/%d", cfg.Benchmark.Order, cfg.Benchmark.Seed)
	}
	if cfg.Shell.Color {
		t.Errorf("color: expected false")
	}
}

func TestInvalidValuesRepaired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `
index:
  strategy: hash
benchmark:
  absent_ratio: 3
  order: sideways
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.Strategy != "bst" || cfg.Benchmark.Order != OrderRandom || cfg.Benchmark.AbsentRatio != 0.1 {
		t.Errorf("invalid values not repaired: %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "STUDENTDB_STRATEGY=linear\nSTUDENTDB_BENCH_RECORDS=64\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	// godotenv.Load never overrides variables that are already set
	t.Setenv("STUDENTDB_STRATEGY", "")
	os.Unsetenv("STUDENTDB_STRATEGY")
	t.Setenv("STUDENTDB_BENCH_RECORDS", "")
	os.Unsetenv("STUDENTDB_BENCH_RECORDS")
	t.Setenv("STUDENTDB_BENCH_ORDER", "ascending")
	t.Setenv("STUDENTDB_COLOR", "false")

	cfg := Default()
	if err := ApplyEnv(cfg, envPath); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Index.Strategy != "linear" {
		t.Errorf("strategy: got %s", cfg.Index.Strategy)
	}
	if cfg.Benchmark.Records != 64 {
		t.Errorf("records: got %d", cfg.Benchmark.Records)
	}
	if cfg.Benchmark.Order != OrderAscending {
		t.Errorf("order: got %s", cfg.Benchmark.Order)
	}
	if cfg.Shell.Color {
		t.Errorf("color: expected false")
	}

	if err := ApplyEnv(Default(), filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

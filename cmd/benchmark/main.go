package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"studentdb/pkg/bench"
	"studentdb/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default: configs/studentdb.yaml)")
	nRec := flag.Int("n", 0, "Number of students to insert (overrides config)")
	nLookup := flag.Int("lookups", 0, "Number of lookups per strategy (overrides config)")
	order := flag.String("order", "", "Insertion order: random | ascending | descending")
	seed := flag.Int64("seed", 0, "Workload seed (overrides config when non-zero)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Config] Failed to load %q: %v", *configPath, err)
	}
	if err := config.ApplyEnv(cfg, ".env"); err != nil {
		log.Fatalf("[Config] Failed to load .env: %v", err)
	}

	bc := cfg.Benchmark
	if *nRec > 0 {
		bc.Records = *nRec
	}
	if *nLookup > 0 {
		bc.Lookups = *nLookup
	}
	if *order != "" {
		bc.Order = *order
	}
	if *seed != 0 {
		bc.Seed = *seed
	}

	fmt.Printf("Student Index Benchmark (N=%d, lookups=%d, order=%s, seed=%d)\n", bc.Records, bc.Lookups, bc.Order, bc.Seed)
	log.Printf("[Bench] Absent ratio %.2f", bc.AbsentRatio)

	results, err := bench.Run(bc)
	if err != nil {
		log.Fatalf("[Bench] %v", err)
	}
	bench.Render(os.Stdout, results)
}

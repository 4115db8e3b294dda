package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"studentdb/pkg/config"
	"studentdb/pkg/core"
	"studentdb/pkg/shell"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default: configs/studentdb.yaml)")
	envFile := flag.String("env", ".env", "Optional .env file with STUDENTDB_* overrides")
	strategy := flag.String("strategy", "", "Index strategy: linear | sorted | bst (overrides config)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Config] Failed to load %q: %v", *configPath, err)
	}
	if err := config.ApplyEnv(cfg, *envFile); err != nil {
		log.Fatalf("[Config] Failed to load env file %q: %v", *envFile, err)
	}

	name := cfg.Index.Strategy
	if *strategy != "" {
		name = *strategy
	}
	idx, err := core.New(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}
	log.Printf("[CLI] Using %s index", idx.Type())

	sh := shell.New(idx, os.Stdin, os.Stdout, shell.Options{Color: cfg.Shell.Color && !*noColor})
	if err := sh.Run(); err != nil {
		log.Fatalf("[CLI] Input error: %v", err)
	}
}

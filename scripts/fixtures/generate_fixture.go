package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mcpregistry/internal/duckdb"
	"mcpregistry/internal/runner"
	"mcpregistry/internal/validator"
)

// fixtureConfig controls the generated servers directory.
type fixtureConfig struct {
	Count        int
	InvalidEvery int
	Runs         int
}

func main() {
	outDir := flag.String("out", "", "output servers directory")
	count := flag.Int("count", 100, "number of server files to write")
	invalidEvery := flag.Int("invalid-every", 10, "make every Nth file invalid (0 disables)")
	historyPath := flag.String("history", "", "optional DuckDB history file to seed with runs")
	runs := flag.Int("runs", 3, "number of runs to record when --history is set")
	flag.Parse()
	if *outDir == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --out <dir> [--count N] [--invalid-every N] [--history <file> --runs N]")
		os.Exit(2)
	}
	cfg := fixtureConfig{Count: *count, InvalidEvery: *invalidEvery, Runs: *runs}
	if err := writeServers(*outDir, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "write servers: %v\n", err)
		os.Exit(1)
	}
	if *historyPath == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := seedHistory(ctx, *outDir, *historyPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "seed history: %v\n", err)
		os.Exit(1)
	}
}

func writeServers(dir string, cfg fixtureConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	for i := 0; i < cfg.Count; i++ {
		invalid := cfg.InvalidEvery > 0 && (i+1)%cfg.InvalidEvery == 0
		name := fmt.Sprintf("server-%04d.yaml", i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(serverYAML(i, invalid)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// seedHistory validates the generated directory once per run and records it.
func seedHistory(ctx context.Context, dir, historyPath string, cfg fixtureConfig) error {
	store, err := duckdb.Open(ctx, historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	plan, err := runner.PlanDir(dir)
	if err != nil {
		return err
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < cfg.Runs; i++ {
		runStart := start.Add(time.Duration(i) * time.Hour)
		results, err := runner.Run(ctx, plan, validator.New(), runner.RunParams{
			Deps: runner.RunDependencies{
				RunID: func() (string, error) { return deterministicID("run", i), nil },
				Now:   func() time.Time { return runStart },
			},
		})
		if err != nil {
			return err
		}
		if err := store.RecordRun(ctx, results); err != nil {
			return err
		}
	}
	return nil
}

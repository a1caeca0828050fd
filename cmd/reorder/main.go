package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tankfarm/reorder/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile = flag.String("config", "", "Path to terminal YAML config file")
		days       = flag.Int("days", 0, "Simulation horizon in days (0 = config value)")
		seed       = flag.Uint64("seed", 0, "Base random seed (0 = config value or time-derived)")
		scenario   = flag.String(
			"scenario",
			"all",
			"Scenario to simulate: all, expected, best_case, worst_case",
		)
		format    = flag.String("format", "text", "Output format: text, json, csv")
		outputDir = flag.String("output", "", "Output directory for results (optional)")
		threshold = flag.Float64("threshold", 0, "Near-stockout threshold in gallons (0 = config value)")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ConfigFile: *configFile,
		Days:       *days,
		Seed:       *seed,
		Scenario:   *scenario,
		Format:     *format,
		OutputDir:  *outputDir,
		Threshold:  *threshold,
		Verbose:    *verbose,
		Help:       *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

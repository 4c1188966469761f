// Package main provides the bancosim CLI for measuring which property
// purchase strategy wins most often over a batch of simulated matches.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bancosim/engine"
	"bancosim/simulation"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	games       int
	seed        int64
	workers     int
	boardPath   string
	verbose     bool
	showVersion bool
)

func init() {
	flag.IntVar(&games, "games", 300, "Number of matches to simulate")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.IntVar(&workers, "workers", 0, "Worker goroutines (0 = run serially, -1 = one per CPU)")
	flag.StringVar(&boardPath, "board", "", "JSON board dataset file (default: built-in 20-slot board)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("bancosim %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Set random seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Load board dataset
	records := engine.DefaultBoard()
	if boardPath != "" {
		var err error
		records, err = engine.LoadProperties(boardPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading board dataset: %v\n", err)
			os.Exit(1)
		}
	}

	printBanner(len(records))

	start := time.Now()

	var stats simulation.AggregatedStats
	var err error
	if workers != 0 {
		stats, err = simulation.RunBatchParallel(records, games, uint64(seed), workers)
	} else {
		stats, err = simulation.RunBatch(records, games, uint64(seed))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}

	printSummary(stats, time.Since(start))
}

func printBanner(boardSize int) {
	fmt.Println()
	fmt.Println("bancosim - property strategy experiment")
	fmt.Println()
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Games:       %d\n", games)
	fmt.Printf("  Board slots: %d\n", boardSize)
	fmt.Printf("  Seed:        %d\n", seed)
	if workers != 0 {
		fmt.Printf("  Workers:     %d (-1=one per CPU)\n", workers)
	}
	fmt.Println()
}

func printSummary(stats simulation.AggregatedStats, elapsed time.Duration) {
	fmt.Println("════════════════════════════════════════════")
	fmt.Println("                  RESULTS")
	fmt.Println("════════════════════════════════════════════")
	fmt.Printf("  Games played:         %d\n", stats.TotalGames)
	fmt.Printf("  Finished by timeout:  %d\n", stats.Timeouts)
	fmt.Printf("  Avg rounds per game:  %.1f\n", stats.AvgRounds)
	fmt.Printf("  Win rate per strategy:\n")
	for _, a := range engine.Archetypes {
		fmt.Printf("    %-10s %6.2f%%", a, stats.WinRate(a))
		if verbose {
			fmt.Printf("  (%d wins)", stats.Wins[a])
		}
		fmt.Println()
	}
	fmt.Printf("  Best strategy:        %s\n", stats.BestArchetype())
	if verbose {
		fmt.Printf("  Avg game duration:    %dns\n", stats.AvgDurationNs)
	}
	fmt.Printf("  Total time:           %s\n", formatDuration(elapsed))
	fmt.Println("════════════════════════════════════════════")
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}

package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/stride/internal/sampledata"
)

// Default configuration constants.
const (
	defaultRowsPerPair = 120
	defaultRecordSteps = 8
	defaultTimeout     = 5 * time.Minute
)

func main() {
	var (
		outputDir     = flag.String("out", "data", "Output directory for the CSV files")
		rowsPerPair   = flag.Int("rows", defaultRowsPerPair, "Performance rows per (gender, event) pair")
		recordSteps   = flag.Int("steps", defaultRecordSteps, "World record progression steps per pair")
		events        = flag.Int("events", 0, "Number of events to cover, 0 means all")
		seed          = flag.Int64("seed", 0, "Seed for reproducible output, 0 means random")
		dirty         = flag.Bool("dirty", false, "Mix in malformed rows (bad dates, DNF results)")
		duplicateRate = flag.Float64("dup", 0, "Probability of duplicating a row")
		logFile       = flag.String("log", "", "Log file for generator output (default: sample_data_TIMESTAMP.log)")
		verbose       = flag.Bool("verbose", false, "Enable verbose logging")
		help          = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	// Setup logging
	if err := sampledata.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Create generator configuration
	config := &sampledata.Config{
		OutputDir:     *outputDir,
		RowsPerPair:   *rowsPerPair,
		RecordSteps:   *recordSteps,
		Events:        *events,
		Seed:          *seed,
		LogFile:       *logFile,
		Verbose:       *verbose,
		IncludeDirty:  *dirty,
		DuplicateRate: *duplicateRate,
	}

	// Generate the datasets
	if err := sampledata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Generation failed: " + err.Error() + "\n")
		return
	}
}

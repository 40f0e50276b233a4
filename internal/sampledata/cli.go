package sampledata

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/stride/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "sample_data_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the sample data tool.
func ShowHelp() {
	os.Stdout.WriteString(`Stride Sample Data Tool
=======================

Generates the three CSV datasets the batch reads: an all-time performance
list, a world-record progression, and the current world records.

Usage:
  go run cmd/sample-data/main.go [options]

Options:
  -out string
        Output directory for the CSV files (default "data")
  -rows int
        Performance rows per (gender, event) pair (default 120)
  -steps int
        World record progression steps per pair (default 8)
  -events int
        Number of events to cover, 0 means all (default 0)
  -seed int
        Seed for reproducible output, 0 means random (default 0)
  -dirty
        Mix in malformed rows (bad dates, DNF results)
  -dup float
        Probability of duplicating a row (default 0)
  -log string
        Log file for generator output (default: sample_data_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate with default settings
  go run cmd/sample-data/main.go

  # Reproducible dataset with messy rows, like real scraped lists
  go run cmd/sample-data/main.go -seed 42 -dirty -dup 0.05

  # Small dataset for quick experiments
  go run cmd/sample-data/main.go -rows 20 -events 3 -out /tmp/stride-data
`)
}

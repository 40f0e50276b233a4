package sampledata

import "time"

// Config holds configuration for the sample dataset generator.
type Config struct {
	OutputDir     string // Directory the CSV files are written to
	RowsPerPair   int    // Performance rows per (gender, event) pair
	RecordSteps   int    // World record progression steps per pair
	Events        int    // Number of events to cover, capped at the table size
	Seed          int64  // Seed for reproducible output, 0 means random
	LogFile       string // Log file for generator output
	Verbose       bool   // Enable verbose logging
	IncludeDirty  bool   // Mix in malformed rows (bad dates, DNF results)
	DuplicateRate float64
}

// Stats holds generation statistics.
type Stats struct {
	PairsGenerated   int
	PerformanceRows  int
	RecordRows       int
	ContemporaryRows int
	DirtyRows        int
	DuplicateRows    int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// Package config defines batch configuration structures and loading hooks.
//
// Conventions:
// - Keep defaults in New and let Load layer file and env on top.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Default chart dimensions in centimeters.
const (
	defaultImageWidthCM  = 24.0
	defaultImageHeightCM = 16.0
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// PerformanceCSV is the all-time performance list input.
	PerformanceCSV string `koanf:"performance_csv"`

	// RecordCSV is the world-record progression input.
	RecordCSV string `koanf:"record_csv"`

	// ContemporaryCSV is the current world records input for the dot plot.
	ContemporaryCSV string `koanf:"contemporary_csv"`

	// OutputDir receives one image per (gender, event) pair plus the summary.
	OutputDir string `koanf:"output_dir"`

	// ImageFormat selects the output encoding: png or svg.
	ImageFormat string `koanf:"image_format"`

	// ImageWidthCM and ImageHeightCM size the rendered charts.
	ImageWidthCM  float64 `koanf:"image_width_cm"`
	ImageHeightCM float64 `koanf:"image_height_cm"`

	// WorkerCount sets the number of render workers. Pairs are independent,
	// so 1 reproduces a strictly sequential pass.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory render job queue.
	QueueSize int `koanf:"queue_size"`

	// DedupeSize caps duplicate-row tracking; 0 means unbounded.
	DedupeSize int `koanf:"dedupe_size"`

	// ReferenceDate pins the trailing point of record overlays, "2006-01-02".
	ReferenceDate string `koanf:"reference_date"`

	// CategoryOverrides remaps event names onto categories:
	// sprint, distance, marathon, field, combined.
	CategoryOverrides map[string]string `koanf:"category_overrides"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		PerformanceCSV:  "data/performances.csv",
		RecordCSV:       "data/world_records.csv",
		ContemporaryCSV: "data/current_records.csv",
		OutputDir:       "charts",
		ImageFormat:     "png",
		ImageWidthCM:    defaultImageWidthCM,
		ImageHeightCM:   defaultImageHeightCM,
		WorkerCount:     runtime.NumCPU(),
		QueueSize:       256,
		DedupeSize:      0,
		ReferenceDate:   "2016-07-29",
	}
}

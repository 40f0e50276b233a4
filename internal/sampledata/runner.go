package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/okian/stride/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run generates the three sample CSV datasets.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "generating sample datasets",
		logger.String("outputDir", config.OutputDir),
		logger.Int("rowsPerPair", config.RowsPerPair),
		logger.Int("recordSteps", config.RecordSteps),
		logger.Int64("seed", config.Seed),
		logger.Any("includeDirty", config.IncludeDirty),
	)

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic data, not crypto

	if err := os.MkdirAll(config.OutputDir, directoryPermission); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tables := generate(ctx, rng, config, stats)

	if err := writeTables(config.OutputDir, tables); err != nil {
		return fmt.Errorf("failed to write datasets: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	logger.Get().Info(ctx, "sample datasets written",
		logger.Int("pairs", stats.PairsGenerated),
		logger.Int("performanceRows", stats.PerformanceRows),
		logger.Int("recordRows", stats.RecordRows),
		logger.Int("contemporaryRows", stats.ContemporaryRows),
		logger.Int("dirtyRows", stats.DirtyRows),
		logger.Int("duplicateRows", stats.DuplicateRows),
		logger.Duration("elapsed", stats.Duration),
	)
	return nil
}

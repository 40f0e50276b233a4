// Package repository loads and serves the CSV datasets.
//
// The three CSV inputs are read once at the start of a batch; everything the
// pipeline needs afterwards is served from memory, grouped by (gender, event).
package repository

import (
	"context"

	"github.com/okian/stride/internal/domain/model"
)

// Store serves the loaded datasets to the batch pipeline.
type Store interface {
	// Load reads all three CSV inputs. Unreadable files or missing required
	// columns are fatal; malformed data rows are skipped, not fatal.
	Load(ctx context.Context) error

	// Pairs returns the distinct (gender, event) pairs present in the
	// performance list, in stable sorted order.
	Pairs(ctx context.Context) []model.Pair

	// Performances returns the performance rows of one pair, in file order.
	Performances(ctx context.Context, pair model.Pair) []model.PerformanceRecord

	// WorldRecords returns the record progression of one pair, in file order.
	WorldRecords(ctx context.Context, pair model.Pair) []model.WorldRecordPoint

	// Contemporary returns the current world records for the summary plot.
	Contemporary(ctx context.Context) []model.ContemporaryRecord
}

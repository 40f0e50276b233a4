// Package types contains common types used across the application
package types

import (
	"time"

	"github.com/okian/stride/internal/domain/event"
	"github.com/okian/stride/internal/domain/model"
)

// Point is one plottable value: a normalized measure at a date, tagged with
// the doping flag that drives its color. Points are built only from valid
// measures; rows that failed to parse never become points.
type Point struct {
	Date  time.Time
	Value float64
	Flag  model.Flag
}

// Chart is everything the renderer needs for one (gender, event) chart.
// It is the payload of a render job; the renderer does not touch the
// datasets again.
type Chart struct {
	Pair     model.Pair
	Category event.Category

	// Points from the all-time performance list, invalid measures excluded.
	Points []Point

	// Overlay is the world-record step series sorted by date, already
	// carrying the synthetic trailing point at the reference date. Empty
	// means no step line is drawn.
	Overlay []Point

	// OutPath is the image file the renderer writes.
	OutPath string
}

// HasOverlay reports whether a step-line overlay will be drawn.
func (c *Chart) HasOverlay() bool { return len(c.Overlay) > 0 }

// DotPlot is the payload of the summary chart: when each contemporary
// world record was set.
type DotPlot struct {
	Records []model.ContemporaryRecord
	OutPath string
}

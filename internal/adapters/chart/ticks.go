package chart

import (
	"math"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// commaTicks renders comma-grouped tick labels for combined-event point
// totals, e.g. 9045 -> "9,045".
type commaTicks struct{}

// Ticks implements plot.Ticker.
func (commaTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label == "" {
			continue // minor tick
		}
		ticks[i].Label = humanize.Comma(int64(math.Round(t.Value)))
	}
	return ticks
}

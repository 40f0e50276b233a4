// Package doping classifies performances against documented state-doping
// program windows and maps the flags present in a chart onto a palette.
package doping

import (
	"time"

	"github.com/okian/stride/internal/domain/model"
)

// window is one nationality + open-ended date range.
type window struct {
	nationality string
	from        time.Time
	flag        model.Flag
}

// windows holds the documented program windows. Checked in order; the first
// match wins, so keep more specific entries first if ranges ever overlap.
var windows = []window{
	{nationality: "GDR", from: time.Date(1974, 1, 1, 0, 0, 0, 0, time.UTC), flag: model.ProgramA},
	{nationality: "RUS", from: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), flag: model.ProgramB},
}

// Classify returns the doping flag for a nationality and performance date.
// Total and deterministic: every input gets exactly one flag, and anything
// outside the known windows (including a zero date) is None. The flag is used
// only for visual highlighting, never for excluding data.
func Classify(nationality string, date time.Time) model.Flag {
	if date.IsZero() {
		return model.None
	}
	for _, w := range windows {
		if nationality == w.nationality && !date.Before(w.from) {
			return w.flag
		}
	}
	return model.None
}

// Flags returns the set of distinct flags present among records.
func Flags(records []model.PerformanceRecord) map[model.Flag]bool {
	present := make(map[model.Flag]bool, 3)
	for _, r := range records {
		present[r.Flag] = true
	}
	return present
}

// Package model contains domain models passed between layers.
package model

import "time"

// Gender identifies the competition class of a performance list.
type Gender string

// Gender values as they appear in the source datasets.
const (
	Men   Gender = "men"
	Women Gender = "women"
)

// Flag tags a performance that falls inside a documented state-doping-program
// window. The ordering None < ProgramB < ProgramA exists only so palette slots
// are assigned deterministically; it carries no numeric meaning.
type Flag int

const (
	// None marks a performance outside every known program window.
	None Flag = iota
	// ProgramB marks performances inside the RUS program window.
	ProgramB
	// ProgramA marks performances inside the GDR program window.
	ProgramA
)

// String returns the dataset label for the flag.
func (f Flag) String() string {
	switch f {
	case ProgramB:
		return "state-program-B"
	case ProgramA:
		return "state-program-A"
	default:
		return "none"
	}
}

// Measure is a normalized result value in the unit implied by the record's
// event category. Valid is false when the raw result string did not parse;
// invalid measures are silently excluded from plotting and from axis-range
// computation.
type Measure struct {
	Value float64
	Valid bool
}

// Missing returns the invalid measure marker.
func Missing() Measure { return Measure{} }

// Valid wraps v in a valid measure.
func Valid(v float64) Measure { return Measure{Value: v, Valid: true} }

// PerformanceRecord is one row of an all-time performance list.
// Records are immutable once normalized.
type PerformanceRecord struct {
	ResultRaw   string    // original textual result, e.g. "9.58", "1:43.00", "2:02:57"
	Competitor  string
	Nationality string    // IOC code, e.g. "GDR", "RUS", "USA"
	Venue       string
	Date        time.Time // zero when the source date did not parse
	Gender      Gender
	Event       string
	Flag        Flag
	Measure     Measure
}

// WorldRecordPoint is one step of a world-record progression.
// ResultRaw is what the dataset carried; Measure is filled by normalization.
type WorldRecordPoint struct {
	ResultRaw string
	Measure   Measure
	Date      time.Time
	Event     string
	Gender    Gender
}

// ContemporaryRecord is one current world record, used only for the summary
// dot plot of when each record was set.
type ContemporaryRecord struct {
	Gender Gender
	Event  string
	Year   int
	Sport  string
}

// Pair is a (gender, event) combination; each pair yields one chart.
type Pair struct {
	Gender Gender
	Event  string
}

// String formats the pair the way output files are named.
func (p Pair) String() string { return string(p.Gender) + " " + p.Event }

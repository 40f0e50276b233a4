// Package event maps event names onto a closed set of result categories.
//
// Conventions:
// - Category membership is a static table, never substring matching on the
//   event name; "400m" and "400m hurdles" are distinct table keys.
// - Unknown events fall back to inference from the shape of a sample result
//   string (count of ':' separators), which callers should log.
package event

import "strings"

// Category selects the parsing rule and output unit for a result string.
type Category int

const (
	// Sprint results are plain decimal seconds, e.g. "9.58".
	Sprint Category = iota
	// Distance results are "MM:SS" with fractional seconds, e.g. "3:26.00".
	Distance
	// Marathon results are "HH:MM:SS", e.g. "2:02:57".
	Marathon
	// Field results are plain decimal meters, e.g. "8.95".
	Field
	// Combined results are integer point totals, e.g. "9045".
	Combined
)

// Unit returns the measurement unit the category normalizes into.
func (c Category) Unit() string {
	switch c {
	case Sprint:
		return "seconds"
	case Distance:
		return "minutes"
	case Marathon:
		return "hours"
	case Field:
		return "meters"
	case Combined:
		return "points"
	}
	return "unknown"
}

// InvertedAxis reports whether the value axis is drawn inverted for this
// category. Time units invert: a lower result is better and is shown higher.
func (c Category) InvertedAxis() bool {
	return c == Sprint || c == Distance || c == Marathon
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Sprint:
		return "sprint"
	case Distance:
		return "distance"
	case Marathon:
		return "marathon"
	case Field:
		return "field"
	case Combined:
		return "combined"
	}
	return "unknown"
}

// categories is the closed membership table. Keys are lowercase event names
// as they appear in the datasets.
var categories = map[string]Category{
	// Track, decided in seconds.
	"100m":         Sprint,
	"200m":         Sprint,
	"400m":         Sprint,
	"100m hurdles": Sprint,
	"110m hurdles": Sprint,
	"400m hurdles": Sprint,
	"4x100m relay": Sprint,

	// Track, decided in minutes.
	"800m":               Distance,
	"1500m":              Distance,
	"3000m steeplechase": Distance,
	"5000m":              Distance,
	"10000m":             Distance,
	"4x400m relay":       Distance,

	// Road, decided in hours.
	"marathon": Marathon,

	// Field, decided in meters.
	"high jump":     Field,
	"pole vault":    Field,
	"long jump":     Field,
	"triple jump":   Field,
	"shot put":      Field,
	"discus throw":  Field,
	"hammer throw":  Field,
	"javelin throw": Field,

	// Combined, decided in points.
	"decathlon":  Combined,
	"heptathlon": Combined,

	// Pool, short course results stay under a minute.
	"50m freestyle":     Sprint,
	"100m freestyle":    Sprint,
	"100m backstroke":   Sprint,
	"100m breaststroke": Sprint,
	"100m butterfly":    Sprint,

	// Pool, minute-scale results.
	"200m freestyle":    Distance,
	"400m freestyle":    Distance,
	"800m freestyle":    Distance,
	"1500m freestyle":   Distance,
	"200m backstroke":   Distance,
	"200m breaststroke": Distance,
	"200m butterfly":    Distance,
	"200m medley":       Distance,
	"400m medley":       Distance,
}

// Lookup returns the category for an event name. The second return is false
// when the event is not in the membership table.
func Lookup(name string) (Category, bool) {
	c, ok := categories[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ParseCategory resolves a category by its name, the inverse of String.
// Used to read category overrides from configuration.
func ParseCategory(name string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sprint":
		return Sprint, true
	case "distance":
		return Distance, true
	case "marathon":
		return Marathon, true
	case "field":
		return Field, true
	case "combined":
		return Combined, true
	}
	return Sprint, false
}

// Infer guesses a category from the shape of a raw result string. Used only
// for events missing from the table: two ':' separators mean hours, one means
// minutes, none means a plain decimal read as seconds. Field and combined
// events cannot be told apart from seconds by shape alone, which is why the
// table is authoritative.
func Infer(sampleResult string) Category {
	switch strings.Count(sampleResult, ":") {
	case 2:
		return Marathon
	case 1:
		return Distance
	default:
		return Sprint
	}
}

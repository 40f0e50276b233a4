// Package normalize converts raw result strings into unit-appropriate
// numeric measures.
package normalize

import (
	"strconv"
	"strings"

	"github.com/okian/stride/internal/domain/event"
	"github.com/okian/stride/internal/domain/model"
)

// Time conversion constants.
const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	secondsPerHour   = 3600
)

// Option applies a configuration option to the TableNormalizer.
type Option func(*TableNormalizer)

// WithCategoryOverrides remaps individual event names onto categories,
// taking precedence over the static membership table.
func WithCategoryOverrides(overrides map[string]event.Category) Option {
	return func(n *TableNormalizer) {
		n.overrides = make(map[string]event.Category, len(overrides))
		for name, cat := range overrides {
			n.overrides[strings.ToLower(strings.TrimSpace(name))] = cat
		}
	}
}

// Normalizer turns a raw result string into a measure for a category.
// Parse failures yield the missing measure, never an error: a malformed row
// drops out of the chart rather than aborting the batch.
type Normalizer interface {
	// Normalize parses raw according to the category's rule.
	Normalize(cat event.Category, raw string) model.Measure

	// Category resolves an event name to its category. The second return is
	// false when the name is absent from both overrides and the static table.
	Category(name string) (event.Category, bool)
}

// TableNormalizer implements Normalizer over the closed category table.
type TableNormalizer struct {
	overrides map[string]event.Category
}

// NewTableNormalizer creates a normalizer with configuration options.
func NewTableNormalizer(opts ...Option) *TableNormalizer {
	n := &TableNormalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Category resolves an event name, overrides first.
func (n *TableNormalizer) Category(name string) (event.Category, bool) {
	if cat, ok := n.overrides[strings.ToLower(strings.TrimSpace(name))]; ok {
		return cat, true
	}
	return event.Lookup(name)
}

// Normalize parses raw according to the category's rule.
func (n *TableNormalizer) Normalize(cat event.Category, raw string) model.Measure {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Missing()
	}

	switch cat {
	case event.Distance:
		return parseMinutes(raw)
	case event.Marathon:
		return parseHours(raw)
	default:
		// Sprint, Field and Combined are plain decimal reads; the unit
		// (seconds, meters, points) is implied by the category.
		return parseDecimal(raw)
	}
}

func parseDecimal(raw string) model.Measure {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return model.Missing()
	}
	return model.Valid(v)
}

// parseMinutes handles "MM:SS" where SS may carry a decimal fraction,
// e.g. "3:26.00" -> 3.4333.
func parseMinutes(raw string) model.Measure {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return model.Missing()
	}
	minutes, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return model.Missing()
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return model.Missing()
	}
	return model.Valid(minutes + seconds/secondsPerMinute)
}

// parseHours handles "HH:MM:SS", e.g. "2:02:57" -> 2.0492.
func parseHours(raw string) model.Measure {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return model.Missing()
	}
	hours, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return model.Missing()
	}
	minutes, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return model.Missing()
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return model.Missing()
	}
	return model.Valid(hours + minutes/minutesPerHour + seconds/secondsPerHour)
}

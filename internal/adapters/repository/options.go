package repository

import (
	"github.com/okian/stride/internal/domain/dedupe"
)

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithDeduper sets the duplicate-row tracker used while loading the
// performance list.
func WithDeduper(d dedupe.Deduper) Option {
	return func(s *CSVStore) {
		if d != nil {
			s.deduper = d
		}
	}
}

// WithDateLayouts replaces the date layouts tried on the Date column.
func WithDateLayouts(layouts []string) Option {
	return func(s *CSVStore) {
		if len(layouts) > 0 {
			s.dateLayouts = layouts
		}
	}
}

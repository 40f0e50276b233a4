// Package dedupe suppresses duplicate rows while loading performance lists.
package dedupe

// Option applies a configuration option to the inMemoryDeduper.
type Option func(*inMemoryDeduper)

// WithMaxSize caps the number of keys kept in memory.
// If maxSize <= 0 tracking is unbounded, which suits datasets of this size.
func WithMaxSize(maxSize int) Option {
	return func(d *inMemoryDeduper) {
		d.maxSize = maxSize
	}
}

// Package dedupe suppresses duplicate rows while loading performance lists.
//
// All-time lists stitched together from several published sources repeat
// rows: the same competitor, event, date and result can appear once per
// source. Only the first occurrence is kept.
package dedupe

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/stride/internal/domain/model"
)

// Deduper records seen row keys so each distinct performance loads once.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of distinct keys recorded.
	Size() int64
}

// Key builds the identity key of a performance row. Two rows with the same
// competitor, event, gender, date and raw result are the same performance
// regardless of which source list they came from.
func Key(r model.PerformanceRecord) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(r.Competitor))
	b.WriteByte('|')
	b.WriteString(strings.ToLower(r.Event))
	b.WriteByte('|')
	b.WriteString(string(r.Gender))
	b.WriteByte('|')
	if !r.Date.IsZero() {
		b.WriteString(r.Date.Format("2006-01-02"))
	}
	b.WriteByte('|')
	b.WriteString(r.ResultRaw)
	return b.String()
}

// inMemoryDeduper implements Deduper with a mutex-guarded map. The datasets
// are small enough that an unbounded map is the right default; maxSize > 0
// caps it for callers streaming much larger lists, dropping dedupe tracking
// (not rows) once the cap is hit.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	maxSize int
	size    atomic.Int64
}

// NewInMemoryDeduper creates an in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		seen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SeenAndRecord atomically checks if key was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		// At capacity: stop tracking rather than evict. A duplicate past the
		// cap slips through, which is harmless overplotting.
		return false
	}
	d.seen[key] = struct{}{}
	d.size.Add(1)
	return false
}

// Size returns the number of distinct keys recorded.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

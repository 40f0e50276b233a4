package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/okian/stride/internal/domain/dedupe"
	"github.com/okian/stride/internal/domain/model"
	"github.com/okian/stride/pkg/metrics"
)

// Dataset names used in metrics labels.
const (
	datasetPerformances = "performances"
	datasetRecords      = "records"
	datasetContemporary = "contemporary"
)

// Skip reasons used in metrics labels.
const (
	reasonShortRow  = "short_row"
	reasonDuplicate = "duplicate"
	reasonBadYear   = "bad_year"
)

// CSVStore implements Store over the three input CSV files.
type CSVStore struct {
	performancePath  string
	recordPath       string
	contemporaryPath string

	dateLayouts []string
	deduper     dedupe.Deduper

	mu           sync.RWMutex
	loaded       bool
	performances map[model.Pair][]model.PerformanceRecord
	records      map[model.Pair][]model.WorldRecordPoint
	contemporary []model.ContemporaryRecord
	pairs        []model.Pair
}

// NewCSVStore creates a store over the given file paths with options.
func NewCSVStore(performancePath, recordPath, contemporaryPath string, opts ...Option) *CSVStore {
	s := &CSVStore{
		performancePath:  performancePath,
		recordPath:       recordPath,
		contemporaryPath: contemporaryPath,
		// Layouts seen across the stitched source lists.
		dateLayouts:  []string{"2006-01-02", "02.01.2006", "2 Jan 2006"},
		deduper:      dedupe.NewInMemoryDeduper(),
		performances: make(map[model.Pair][]model.PerformanceRecord),
		records:      make(map[model.Pair][]model.WorldRecordPoint),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load reads all three CSV inputs.
func (s *CSVStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	if err := s.loadPerformances(ctx); err != nil {
		return err
	}
	if err := s.loadWorldRecords(ctx); err != nil {
		return err
	}
	if err := s.loadContemporary(ctx); err != nil {
		return err
	}

	s.pairs = make([]model.Pair, 0, len(s.performances))
	for pair := range s.performances {
		s.pairs = append(s.pairs, pair)
	}
	sort.Slice(s.pairs, func(i, j int) bool {
		if s.pairs[i].Gender != s.pairs[j].Gender {
			return s.pairs[i].Gender < s.pairs[j].Gender
		}
		return s.pairs[i].Event < s.pairs[j].Event
	})

	s.loaded = true
	return nil
}

// Pairs returns the distinct (gender, event) pairs in stable sorted order.
func (s *CSVStore) Pairs(_ context.Context) []model.Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// Performances returns the performance rows of one pair.
func (s *CSVStore) Performances(_ context.Context, pair model.Pair) []model.PerformanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.performances[pair]
}

// WorldRecords returns the record progression of one pair.
func (s *CSVStore) WorldRecords(_ context.Context, pair model.Pair) []model.WorldRecordPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[pair]
}

// Contemporary returns the current world records.
func (s *CSVStore) Contemporary(_ context.Context) []model.ContemporaryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contemporary
}

// header maps lowercase column names to field indices.
type header map[string]int

// column fetches a required column index.
func (h header) column(dataset, name string) (int, error) {
	idx, ok := h[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: dataset %s column %q", ErrMissingColumn, dataset, name)
	}
	return idx, nil
}

// openCSV opens a dataset and reads its header row.
func openCSV(path, dataset string) (*os.File, *csv.Reader, header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: %w", ErrOpenDataset, dataset, err)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows are validated per column index, not per count
	r.TrimLeadingSpace = true

	first, err := r.Read()
	if err != nil {
		f.Close()
		return nil, nil, nil, fmt.Errorf("%w: %s header: %w", ErrReadDataset, dataset, err)
	}

	h := make(header, len(first))
	for i, name := range first {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return f, r, h, nil
}

func (s *CSVStore) loadPerformances(ctx context.Context) error {
	f, r, h, err := openCSV(s.performancePath, datasetPerformances)
	if err != nil {
		return err
	}
	defer f.Close()

	cols := make(map[string]int, 7)
	for _, name := range []string{"Result", "Competitor", "Nat", "Venue", "Date", "Gender", "Event"} {
		idx, err := h.column(datasetPerformances, name)
		if err != nil {
			return err
		}
		cols[name] = idx
	}
	// The StateDope column is accepted but ignored: the flag is recomputed
	// from nationality and date so stale prep-script output cannot disagree
	// with the classification table.

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadDataset, datasetPerformances, err)
		}
		if len(row) <= maxIndex(cols) {
			metrics.RecordRowSkipped(datasetPerformances, reasonShortRow)
			continue
		}

		rec := model.PerformanceRecord{
			ResultRaw:   strings.TrimSpace(row[cols["Result"]]),
			Competitor:  strings.TrimSpace(row[cols["Competitor"]]),
			Nationality: strings.TrimSpace(row[cols["Nat"]]),
			Venue:       strings.TrimSpace(row[cols["Venue"]]),
			Date:        s.parseDate(row[cols["Date"]]),
			Gender:      parseGender(row[cols["Gender"]]),
			Event:       strings.TrimSpace(row[cols["Event"]]),
		}

		if s.deduper.SeenAndRecord(ctx, dedupe.Key(rec)) {
			metrics.RecordRowSkipped(datasetPerformances, reasonDuplicate)
			continue
		}

		pair := model.Pair{Gender: rec.Gender, Event: rec.Event}
		s.performances[pair] = append(s.performances[pair], rec)
		metrics.RecordRowLoaded(datasetPerformances)
	}
	return nil
}

func (s *CSVStore) loadWorldRecords(_ context.Context) error {
	f, r, h, err := openCSV(s.recordPath, datasetRecords)
	if err != nil {
		return err
	}
	defer f.Close()

	cols := make(map[string]int, 4)
	for _, name := range []string{"Result", "Date", "Event", "Gender"} {
		idx, err := h.column(datasetRecords, name)
		if err != nil {
			return err
		}
		cols[name] = idx
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadDataset, datasetRecords, err)
		}
		if len(row) <= maxIndex(cols) {
			metrics.RecordRowSkipped(datasetRecords, reasonShortRow)
			continue
		}

		point := model.WorldRecordPoint{
			ResultRaw: strings.TrimSpace(row[cols["Result"]]),
			Date:      s.parseDate(row[cols["Date"]]),
			Event:     strings.TrimSpace(row[cols["Event"]]),
			Gender:    parseGender(row[cols["Gender"]]),
		}

		pair := model.Pair{Gender: point.Gender, Event: point.Event}
		s.records[pair] = append(s.records[pair], point)
		metrics.RecordRowLoaded(datasetRecords)
	}
	return nil
}

func (s *CSVStore) loadContemporary(_ context.Context) error {
	f, r, h, err := openCSV(s.contemporaryPath, datasetContemporary)
	if err != nil {
		return err
	}
	defer f.Close()

	cols := make(map[string]int, 4)
	for _, name := range []string{"Gender", "Event", "Year", "Sport"} {
		idx, err := h.column(datasetContemporary, name)
		if err != nil {
			return err
		}
		cols[name] = idx
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadDataset, datasetContemporary, err)
		}
		if len(row) <= maxIndex(cols) {
			metrics.RecordRowSkipped(datasetContemporary, reasonShortRow)
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[cols["Year"]]))
		if err != nil {
			metrics.RecordRowSkipped(datasetContemporary, reasonBadYear)
			continue
		}

		s.contemporary = append(s.contemporary, model.ContemporaryRecord{
			Gender: parseGender(row[cols["Gender"]]),
			Event:  strings.TrimSpace(row[cols["Event"]]),
			Year:   year,
			Sport:  strings.TrimSpace(row[cols["Sport"]]),
		})
		metrics.RecordRowLoaded(datasetContemporary)
	}
	return nil
}

// parseDate tries the configured layouts in order. An unparseable date comes
// back zero; the row is kept and classifies as unflagged.
func (s *CSVStore) parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range s.dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseGender(raw string) model.Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "men", "m", "male":
		return model.Men
	case "women", "w", "f", "female":
		return model.Women
	default:
		return model.Gender(strings.ToLower(strings.TrimSpace(raw)))
	}
}

func maxIndex(cols map[string]int) int {
	maxIdx := 0
	for _, idx := range cols {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	return maxIdx
}

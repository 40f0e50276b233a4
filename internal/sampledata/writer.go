package sampledata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/stride/internal/domain/model"
)

// Output file names, matching the loader defaults.
const (
	performanceFile  = "performances.csv"
	recordFile       = "world_records.csv"
	contemporaryFile = "current_records.csv"
)

const csvDateLayout = "2006-01-02"

// writeTables writes the three CSV files into the output directory.
func writeTables(dir string, t *tables) error {
	if err := writeCSV(filepath.Join(dir, performanceFile),
		[]string{"Result", "Competitor", "Nat", "Venue", "Date", "Gender", "Event"},
		len(t.performances),
		func(i int) []string { return performanceRow(t.performances[i]) },
	); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, recordFile),
		[]string{"Result", "Date", "Event", "Gender"},
		len(t.records),
		func(i int) []string { return recordRow(t.records[i]) },
	); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, contemporaryFile),
		[]string{"Gender", "Event", "Year", "Sport"},
		len(t.contemporary),
		func(i int) []string { return contemporaryRow(t.contemporary[i]) },
	)
}

func writeCSV(path string, header []string, rows int, row func(int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked below

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", path, err)
	}
	for i := 0; i < rows; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}

func performanceRow(rec model.PerformanceRecord) []string {
	date := ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format(csvDateLayout)
	}
	return []string{
		rec.ResultRaw,
		rec.Competitor,
		rec.Nationality,
		rec.Venue,
		date,
		string(rec.Gender),
		rec.Event,
	}
}

func recordRow(wr model.WorldRecordPoint) []string {
	return []string{
		wr.ResultRaw,
		wr.Date.Format(csvDateLayout),
		wr.Event,
		string(wr.Gender),
	}
}

func contemporaryRow(cr model.ContemporaryRecord) []string {
	return []string{
		string(cr.Gender),
		cr.Event,
		strconv.Itoa(cr.Year),
		cr.Sport,
	}
}

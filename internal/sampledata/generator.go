package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/okian/stride/internal/domain/event"
	"github.com/okian/stride/internal/domain/model"
	"github.com/okian/stride/pkg/logger"
)

// eventSpec describes one generated event: the best plausible result per
// gender and how far the tail of the all-time list stretches behind it.
type eventSpec struct {
	name      string
	cat       event.Category
	sport     string
	menBest   float64
	womenBest float64
	spread    float64
}

// eventSpecs covers every category at least once. Values are in the
// category unit (seconds, minutes, hours, meters, points).
var eventSpecs = []eventSpec{
	{name: "100m", cat: event.Sprint, sport: "athletics", menBest: 9.58, womenBest: 10.49, spread: 0.45},
	{name: "400m hurdles", cat: event.Sprint, sport: "athletics", menBest: 46.78, womenBest: 52.34, spread: 2.2},
	{name: "800m", cat: event.Distance, sport: "athletics", menBest: 1.6818, womenBest: 1.8906, spread: 0.06},
	{name: "5000m", cat: event.Distance, sport: "athletics", menBest: 12.625, womenBest: 14.19, spread: 0.7},
	{name: "marathon", cat: event.Marathon, sport: "athletics", menBest: 2.0492, womenBest: 2.2593, spread: 0.09},
	{name: "long jump", cat: event.Field, sport: "athletics", menBest: 8.95, womenBest: 7.52, spread: 0.6},
	{name: "shot put", cat: event.Field, sport: "athletics", menBest: 23.12, womenBest: 22.63, spread: 2.5},
	{name: "javelin throw", cat: event.Field, sport: "athletics", menBest: 98.48, womenBest: 72.28, spread: 12.0},
	{name: "decathlon", cat: event.Combined, sport: "athletics", menBest: 9045, womenBest: 8358, spread: 700},
	{name: "100m freestyle", cat: event.Sprint, sport: "swimming", menBest: 46.91, womenBest: 51.71, spread: 2.0},
	{name: "1500m freestyle", cat: event.Distance, sport: "swimming", menBest: 14.52, womenBest: 15.42, spread: 0.8},
}

var nationalities = []string{
	"USA", "USA", "USA", "JAM", "KEN", "ETH", "GBR", "GER", "GDR", "GDR",
	"RUS", "RUS", "URS", "CHN", "CUB", "POL", "FRA", "ITA", "NOR", "AUS",
}

var venues = []string{
	"Berlin", "Zurich", "London", "Eugene", "Rome", "Oslo", "Brussels",
	"Beijing", "Moscow", "Sydney", "Helsinki", "Doha", "Monaco",
}

type tables struct {
	performances []model.PerformanceRecord
	records      []model.WorldRecordPoint
	contemporary []model.ContemporaryRecord
}

// generate builds the in-memory tables for every pair, best first so the
// files read like real all-time lists.
func generate(ctx context.Context, rng *rand.Rand, config *Config, stats *Stats) *tables {
	specs := eventSpecs
	if config.Events > 0 && config.Events < len(specs) {
		specs = specs[:config.Events]
	}

	out := &tables{}
	for _, spec := range specs {
		for _, gender := range []model.Gender{model.Men, model.Women} {
			generatePair(rng, config, stats, spec, gender, out)
			stats.PairsGenerated++
		}
	}

	logger.Get().Info(ctx, "sample tables generated",
		logger.Int("pairs", stats.PairsGenerated),
		logger.Int("performanceRows", stats.PerformanceRows),
		logger.Int("recordRows", stats.RecordRows),
	)
	return out
}

func generatePair(rng *rand.Rand, config *Config, stats *Stats, spec eventSpec, gender model.Gender, out *tables) {
	best := spec.menBest
	if gender == model.Women {
		best = spec.womenBest
	}

	// All-time list: results fan out behind the best mark. Time results
	// grow worse upward, distance and point results downward.
	for i := 0; i < config.RowsPerPair; i++ {
		offset := rng.Float64() * spec.spread
		value := best + offset
		if !spec.cat.InvertedAxis() {
			value = best - offset
		}

		rec := model.PerformanceRecord{
			ResultRaw:   formatResult(spec.cat, value),
			Competitor:  competitorName(),
			Nationality: nationalities[rng.Intn(len(nationalities))],
			Venue:       venues[rng.Intn(len(venues))],
			Date:        randomDate(rng, 1960, 2016),
			Gender:      gender,
			Event:       spec.name,
		}
		if config.IncludeDirty && rng.Float64() < dirtyRate {
			rec = dirtyRow(rng, rec)
			stats.DirtyRows++
		}
		out.performances = append(out.performances, rec)
		stats.PerformanceRows++

		if config.DuplicateRate > 0 && rng.Float64() < config.DuplicateRate {
			out.performances = append(out.performances, rec)
			stats.PerformanceRows++
			stats.DuplicateRows++
		}
	}

	// Record progression: the mark improves step by step toward the best.
	steps := config.RecordSteps
	if steps < 1 {
		steps = 1
	}
	year := 1960
	for i := 0; i < steps; i++ {
		frac := float64(steps-1-i) / float64(steps)
		value := best + spec.spread*frac
		if !spec.cat.InvertedAxis() {
			value = best - spec.spread*frac
		}
		out.records = append(out.records, model.WorldRecordPoint{
			ResultRaw: formatResult(spec.cat, value),
			Date:      randomDate(rng, year, year+1),
			Event:     spec.name,
			Gender:    gender,
		})
		stats.RecordRows++
		year += (2012 - 1960) / steps
	}

	out.contemporary = append(out.contemporary, model.ContemporaryRecord{
		Gender: gender,
		Event:  spec.name,
		Year:   year,
		Sport:  spec.sport,
	})
	stats.ContemporaryRows++
}

// dirtyRate is the share of rows mangled when IncludeDirty is set.
const dirtyRate = 0.02

// dirtyRow mangles one row the way real scraped lists are mangled.
func dirtyRow(rng *rand.Rand, rec model.PerformanceRecord) model.PerformanceRecord {
	if rng.Intn(2) == 0 {
		rec.ResultRaw = "DNF"
	} else {
		rec.Date = time.Time{}
	}
	return rec
}

func competitorName() string {
	// Synthetic but distinct; the short UUID prefix keeps names unique.
	return "athlete-" + uuid.NewString()[:8]
}

func randomDate(rng *rand.Rand, fromYear, toYear int) time.Time {
	from := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(toYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	span := int(to.Sub(from).Hours() / 24)
	if span <= 0 {
		return from
	}
	return from.AddDate(0, 0, rng.Intn(span))
}

// formatResult renders a category value back into the textual form the
// datasets carry.
func formatResult(cat event.Category, value float64) string {
	switch cat {
	case event.Distance:
		minutes := int(value)
		seconds := (value - float64(minutes)) * 60
		return fmt.Sprintf("%d:%05.2f", minutes, seconds)
	case event.Marathon:
		hours := int(value)
		rem := (value - float64(hours)) * 60
		minutes := int(rem)
		seconds := int((rem - float64(minutes)) * 60)
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case event.Combined:
		return fmt.Sprintf("%d", int(value))
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

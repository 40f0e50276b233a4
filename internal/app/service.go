// Package service orchestrates one batch run: it loads the datasets,
// builds a chart for every (gender, event) pair, renders the charts
// through a worker pool, and finishes with the summary dot plot.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	renderqueue "github.com/okian/stride/internal/adapters/mq/queue"
	workerpool "github.com/okian/stride/internal/adapters/mq/worker"
	"github.com/okian/stride/internal/adapters/repository"
	"github.com/okian/stride/internal/domain/doping"
	"github.com/okian/stride/internal/domain/event"
	"github.com/okian/stride/internal/domain/model"
	"github.com/okian/stride/internal/domain/normalize"
	"github.com/okian/stride/internal/domain/types"
	"github.com/okian/stride/pkg/logger"
	"github.com/okian/stride/pkg/metrics"
)

// Renderer is what the service needs from the chart adapter.
type Renderer interface {
	RenderChart(ctx context.Context, chart *types.Chart) error
	RenderDotPlot(ctx context.Context, dot *types.DotPlot) error
}

// Service runs the reporting batch end to end.
type Service struct {
	// Core components
	store      repository.Store
	renderer   Renderer
	normalizer normalize.Normalizer

	// Configuration
	workerCount   int
	queueSize     int
	outputDir     string
	imageFormat   string
	referenceDate time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the dataset store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRenderer sets the chart renderer.
func WithRenderer(renderer Renderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithNormalizer sets the result normalizer.
func WithNormalizer(n normalize.Normalizer) Option {
	return func(s *Service) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithWorkerCount sets the number of render workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the minimum capacity of the render queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithOutputDir sets the directory the chart images are written to.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outputDir = dir
		}
	}
}

// WithImageFormat sets the image file extension (png or svg).
func WithImageFormat(format string) Option {
	return func(s *Service) {
		if format != "" {
			s.imageFormat = format
		}
	}
}

// WithReferenceDate sets the date the last world record is extended to.
func WithReferenceDate(date time.Time) Option {
	return func(s *Service) {
		if !date.IsZero() {
			s.referenceDate = date
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:   runtime.NumCPU(),
		queueSize:     256,
		outputDir:     "charts",
		imageFormat:   "png",
		referenceDate: time.Date(2016, time.July, 29, 0, 0, 0, 0, time.UTC),
		logger:        nil, // Resolved in Run
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes the whole batch. It returns an error when a dataset
// cannot be loaded or when any chart fails to render; a run with
// skipped rows but rendered charts is a success.
func (s *Service) Run(ctx context.Context) error {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		return ErrNoStore
	}
	if s.renderer == nil {
		return ErrNoRenderer
	}
	if s.normalizer == nil {
		s.normalizer = normalize.NewTableNormalizer()
	}

	start := time.Now()
	s.logger.Info(ctx, "starting batch run",
		logger.Int("workers", s.workerCount),
		logger.String("outputDir", s.outputDir),
		logger.String("format", s.imageFormat),
	)

	if err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadDatasets, err)
	}

	if err := os.MkdirAll(s.outputDir, 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}

	pairs := s.store.Pairs(ctx)
	s.logger.Info(ctx, "datasets loaded", logger.Int("pairs", len(pairs)))

	// The queue must hold every job: the producer loop below runs before
	// the jobs drain and must never block on a full queue.
	capacity := s.queueSize
	if len(pairs) > capacity {
		capacity = len(pairs)
	}
	queue := renderqueue.NewInMemoryQueue(renderqueue.WithCapacity(capacity))
	pool := workerpool.NewPool(s.workerCount, queue, s.renderer)
	pool.Start(ctx)

	for _, pair := range pairs {
		chart := s.buildChart(ctx, pair)
		if !queue.Enqueue(ctx, chart) {
			queue.Close()
			return fmt.Errorf("%w: %s", ErrEnqueueChart, pair)
		}
		s.logger.Debug(ctx, "chart queued",
			logger.String("pair", pair.String()),
			logger.Int("points", len(chart.Points)),
			logger.Int("overlay", len(chart.Overlay)),
		)
	}

	queue.Close()
	if err := pool.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderCharts, err)
	}

	if err := s.renderDotPlot(ctx); err != nil {
		return err
	}

	s.logSummary(ctx, time.Since(start))
	return nil
}

// buildChart turns the performance rows of one pair into a render job.
func (s *Service) buildChart(ctx context.Context, pair model.Pair) *types.Chart {
	records := s.store.Performances(ctx, pair)
	cat := s.category(ctx, pair, records)

	points := make([]types.Point, 0, len(records))
	for _, rec := range records {
		m := s.normalizer.Normalize(cat, rec.ResultRaw)
		if !m.Valid {
			metrics.RecordParseFailure()
			s.logger.Debug(ctx, "unparseable result",
				logger.String("pair", pair.String()),
				logger.String("result", rec.ResultRaw),
			)
			continue
		}
		if rec.Date.IsZero() {
			// A point cannot be placed on the time axis without a date.
			metrics.RecordRowSkipped("performances", "missing_date")
			continue
		}
		points = append(points, types.Point{
			Date:  rec.Date,
			Value: m.Value,
			Flag:  doping.Classify(rec.Nationality, rec.Date),
		})
	}

	return &types.Chart{
		Pair:     pair,
		Category: cat,
		Points:   points,
		Overlay:  s.buildOverlay(ctx, pair, cat),
		OutPath:  s.outPath(pair.String()),
	}
}

// category resolves the event category, falling back to the shape of
// the first result string when the event is not in the static table.
func (s *Service) category(ctx context.Context, pair model.Pair, records []model.PerformanceRecord) event.Category {
	if cat, ok := s.normalizer.Category(pair.Event); ok {
		return cat
	}

	sample := ""
	for _, rec := range records {
		if rec.ResultRaw != "" {
			sample = rec.ResultRaw
			break
		}
	}
	cat := event.Infer(sample)
	s.logger.Warn(ctx, "unknown event, inferring category from result shape",
		logger.String("event", pair.Event),
		logger.String("sample", sample),
		logger.String("category", cat.String()),
	)
	return cat
}

// buildOverlay assembles the world record progression for one pair.
// The last record is repeated at the reference date so the step line
// runs to the right edge of the chart.
func (s *Service) buildOverlay(ctx context.Context, pair model.Pair, cat event.Category) []types.Point {
	progression := s.store.WorldRecords(ctx, pair)

	overlay := make([]types.Point, 0, len(progression)+1)
	for _, wr := range progression {
		m := s.normalizer.Normalize(cat, wr.ResultRaw)
		if !m.Valid || wr.Date.IsZero() {
			metrics.RecordRowSkipped("world_records", "unusable_row")
			continue
		}
		overlay = append(overlay, types.Point{Date: wr.Date, Value: m.Value})
	}
	if len(overlay) == 0 {
		return nil
	}

	sort.Slice(overlay, func(i, j int) bool {
		return overlay[i].Date.Before(overlay[j].Date)
	})
	last := overlay[len(overlay)-1]
	if last.Date.Before(s.referenceDate) {
		overlay = append(overlay, types.Point{Date: s.referenceDate, Value: last.Value})
	}
	return overlay
}

// renderDotPlot draws the summary plot of current world record years.
func (s *Service) renderDotPlot(ctx context.Context) error {
	records := s.store.Contemporary(ctx)
	if len(records) == 0 {
		s.logger.Warn(ctx, "no contemporary records, skipping summary plot")
		return nil
	}

	dot := &types.DotPlot{
		Records: records,
		OutPath: s.outPath("current records"),
	}
	if err := s.renderer.RenderDotPlot(ctx, dot); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderCharts, err)
	}
	return nil
}

func (s *Service) outPath(name string) string {
	return filepath.Join(s.outputDir, name+"."+s.imageFormat)
}

// logSummary reports the batch counters collected during the run.
func (s *Service) logSummary(ctx context.Context, elapsed time.Duration) {
	snapshot, err := metrics.Snapshot()
	if err != nil {
		s.logger.Warn(ctx, "failed to gather metrics", logger.Error(err))
		return
	}

	fields := []logger.Field{logger.Duration("elapsed", elapsed)}
	// Stable field order for readable log lines.
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, logger.Float64(k, snapshot[k]))
	}
	s.logger.Info(ctx, "batch run finished", fields...)
}

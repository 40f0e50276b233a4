package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/okian/stride/internal/adapters/chart"
	"github.com/okian/stride/internal/adapters/repository"
	app "github.com/okian/stride/internal/app"
	"github.com/okian/stride/internal/config"
	"github.com/okian/stride/internal/domain/dedupe"
	"github.com/okian/stride/internal/domain/event"
	"github.com/okian/stride/internal/domain/normalize"
	"github.com/okian/stride/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			logger.Error(err)
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	runID := uuid.NewString()
	loggerInstance.Info(ctx, "starting batch",
		logger.String("run_id", runID),
		logger.String("performances", cfg.PerformanceCSV),
		logger.String("records", cfg.RecordCSV),
		logger.String("contemporary", cfg.ContemporaryCSV),
	)

	store := repository.NewCSVStore(
		cfg.PerformanceCSV,
		cfg.RecordCSV,
		cfg.ContemporaryCSV,
		repository.WithDeduper(dedupe.NewInMemoryDeduper(
			dedupe.WithMaxSize(cfg.DedupeSize),
		)),
	)
	renderer := chart.NewPlotRenderer(
		chart.WithDimensionsCM(cfg.ImageWidthCM, cfg.ImageHeightCM),
	)
	normalizer := normalize.NewTableNormalizer(
		normalize.WithCategoryOverrides(categoryOverrides(ctx, cfg)),
	)

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithStore(store),
		app.WithRenderer(renderer),
		app.WithNormalizer(normalizer),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.QueueSize),
		app.WithOutputDir(cfg.OutputDir),
		app.WithImageFormat(cfg.ImageFormat),
		app.WithReferenceDate(cfg.ReferenceTime()),
	)

	if err := svc.Run(ctx); err != nil {
		loggerInstance.Error(ctx, "batch failed", logger.String("run_id", runID), logger.Error(err))
		return 1
	}

	loggerInstance.Info(ctx, "batch complete", logger.String("run_id", runID))
	return 0
}

// categoryOverrides resolves the configured event remappings, dropping
// entries whose category name is unknown.
func categoryOverrides(ctx context.Context, cfg *config.Config) map[string]event.Category {
	overrides := make(map[string]event.Category, len(cfg.CategoryOverrides))
	for name, catName := range cfg.CategoryOverrides {
		cat, ok := event.ParseCategory(catName)
		if !ok {
			logger.Get().Warn(ctx, "ignoring override with unknown category",
				logger.String("event", name),
				logger.String("category", catName),
			)
			continue
		}
		overrides[name] = cat
	}
	return overrides
}

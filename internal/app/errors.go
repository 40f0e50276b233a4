package service

import "errors"

var (
	// ErrNoStore is returned when the service is run without a dataset store.
	ErrNoStore = errors.New("no dataset store configured")

	// ErrNoRenderer is returned when the service is run without a renderer.
	ErrNoRenderer = errors.New("no renderer configured")

	// ErrLoadDatasets wraps a fatal dataset load failure.
	ErrLoadDatasets = errors.New("failed to load datasets")

	// ErrOutputDir wraps a failure to create the output directory.
	ErrOutputDir = errors.New("failed to create output directory")

	// ErrEnqueueChart is returned when a render job cannot be queued.
	ErrEnqueueChart = errors.New("failed to enqueue chart")

	// ErrRenderCharts wraps render failures collected from the workers.
	ErrRenderCharts = errors.New("failed to render charts")
)

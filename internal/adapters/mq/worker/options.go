// Package worker defines the render worker pool.
package worker

import (
	"github.com/okian/stride/pkg/logger"
)

// Option applies a configuration option to the InMemoryWorker.
type Option func(*InMemoryWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *InMemoryWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(logger logger.Logger) Option {
	return func(w *InMemoryWorker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// withReport wires the pool's error collector into a worker.
func withReport(report func(error)) Option {
	return func(w *InMemoryWorker) {
		if report != nil {
			w.report = report
		}
	}
}

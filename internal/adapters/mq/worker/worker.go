// Package worker defines the render worker pool.
//
// Each job renders one chart into its own output file, so workers share
// nothing and the pool size is purely a throughput knob; a pool of one
// reproduces a strictly sequential batch.
package worker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/okian/stride/internal/adapters/mq/queue"
	"github.com/okian/stride/internal/domain/types"
	"github.com/okian/stride/pkg/logger"
	"github.com/okian/stride/pkg/metrics"
)

// Renderer draws one chart; satisfied by the chart adapter.
type Renderer interface {
	RenderChart(ctx context.Context, chart *types.Chart) error
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker processes render jobs until its job channel closes.
type Worker interface {
	// Run starts the worker loop until ctx is canceled or the queue drains.
	Run(ctx context.Context)
}

// InMemoryWorker implements Worker for rendering charts.
type InMemoryWorker struct {
	queue    Queue
	renderer Renderer
	name     string
	report   func(error)
	done     chan struct{}
	logger   logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(q Queue, renderer Renderer, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		renderer: renderer,
		name:     "worker",
		report:   func(error) {},
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				// Queue drained and closed, worker is finished.
				return
			}
			if err := w.renderJob(ctx, job); err != nil {
				w.logger.Error(ctx, "chart render failed",
					logger.String("chart", job.Pair.String()),
					logger.Error(err),
				)
				w.report(err)
			}
		}
	}
}

// renderJob handles a single chart.
func (w *InMemoryWorker) renderJob(ctx context.Context, job queue.Job) error {
	w.logger.Debug(ctx, "rendering chart",
		logger.String("chart", job.Pair.String()),
		logger.Int("points", len(job.Points)),
		logger.Any("overlay", job.HasOverlay()),
	)
	if err := w.renderer.RenderChart(ctx, job); err != nil {
		return fmt.Errorf("render %s: %w", job.Pair, err)
	}
	return nil
}

// Pool manages multiple render workers.
type Pool struct {
	workers []*InMemoryWorker

	mu   sync.Mutex
	errs []error

	logger logger.Logger
}

// NewPool creates a worker pool of the given size.
func NewPool(workerCount int, q Queue, renderer Renderer) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}

	pool := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			q,
			renderer,
			WithName("worker-"+strconv.Itoa(i)),
			withReport(pool.record),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Wait blocks until every worker has drained the queue or ctx fires, then
// returns the joined render errors, if any. Close the queue before waiting.
func (p *Pool) Wait(ctx context.Context) error {
	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-ctx.Done():
			p.logger.Warn(ctx, "worker wait cancelled", logger.Int("worker_id", i))
			return fmt.Errorf("worker wait cancelled: %w", ctx.Err())
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

// record collects a render error from a worker.
func (p *Pool) record(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, err)
}

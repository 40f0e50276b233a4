// Package metrics provides Prometheus metrics for the stride chart batch.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Manager manages all Prometheus metrics for a batch run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	// Dataset metrics - what was read and what was dropped
	rowsLoaded  *prometheus.CounterVec
	rowsSkipped *prometheus.CounterVec

	// Normalization metrics
	parseFailures prometheus.Counter

	// Chart metrics - what the batch produced
	chartsRendered prometheus.Counter
	emptyCharts    prometheus.Counter
	overlaysDrawn  prometheus.Counter
	renderErrors   prometheus.Counter
	renderDuration prometheus.Histogram

	// Pipeline health
	queueSize   prometheus.Gauge
	workerCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "stride",
		subsystem:        "batch",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsLoaded = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_loaded_total",
			Help:      "Total number of CSV rows loaded, by dataset",
		},
		[]string{"dataset"},
	)

	m.rowsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_skipped_total",
			Help:      "Total number of CSV rows skipped, by dataset and reason",
		},
		[]string{"dataset", "reason"},
	)

	m.parseFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_parse_failures_total",
		Help:      "Total number of result strings that normalized to a missing measure",
	})

	m.chartsRendered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "charts_rendered_total",
		Help:      "Total number of chart images written",
	})

	m.emptyCharts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "charts_empty_total",
		Help:      "Total number of charts rendered with zero plottable points",
	})

	m.overlaysDrawn = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "record_overlays_drawn_total",
		Help:      "Total number of charts that carried a world-record step overlay",
	})

	m.renderErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_errors_total",
		Help:      "Total number of chart render or save failures",
	})

	m.renderDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_duration_milliseconds",
		Help:      "Histogram of per-chart render duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current size of the render job queue",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of render workers in the pool",
	})
}

// Snapshot gathers the registry and flattens it to metric name -> value.
// Counters and gauges report their value, histograms their sample count.
// Used to log a human-readable summary at the end of a run.
func (m *Manager) Snapshot() (map[string]float64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGather, err)
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var total float64
		for _, metric := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				total += metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				total += metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				total += float64(metric.GetHistogram().GetSampleCount())
			default:
				// untyped and summaries do not occur in this registry
			}
		}
		out[mf.GetName()] = total
	}
	return out, nil
}

// Package-level helpers on the global manager.

// RecordRowLoaded counts one loaded CSV row for a dataset.
func RecordRowLoaded(dataset string) {
	if globalManager.enabled {
		globalManager.rowsLoaded.WithLabelValues(dataset).Inc()
	}
}

// RecordRowSkipped counts one skipped CSV row for a dataset and reason.
func RecordRowSkipped(dataset, reason string) {
	if globalManager.enabled {
		globalManager.rowsSkipped.WithLabelValues(dataset, reason).Inc()
	}
}

// RecordParseFailure counts one result string that failed to normalize.
func RecordParseFailure() {
	if globalManager.enabled {
		globalManager.parseFailures.Inc()
	}
}

// RecordChartRendered counts one written chart image.
func RecordChartRendered() {
	if globalManager.enabled {
		globalManager.chartsRendered.Inc()
	}
}

// RecordEmptyChart counts one chart with zero plottable points.
func RecordEmptyChart() {
	if globalManager.enabled {
		globalManager.emptyCharts.Inc()
	}
}

// RecordOverlayDrawn counts one chart with a world-record step overlay.
func RecordOverlayDrawn() {
	if globalManager.enabled {
		globalManager.overlaysDrawn.Inc()
	}
}

// RecordRenderError counts one render or save failure.
func RecordRenderError() {
	if globalManager.enabled {
		globalManager.renderErrors.Inc()
	}
}

// ObserveRenderDuration records one per-chart render duration in milliseconds.
func ObserveRenderDuration(ms float64) {
	if globalManager.enabled {
		globalManager.renderDuration.Observe(ms)
	}
}

// UpdateQueueSize sets the render queue size gauge.
func UpdateQueueSize(n int) {
	if globalManager.enabled {
		globalManager.queueSize.Set(float64(n))
	}
}

// UpdateWorkerCount sets the worker pool size gauge.
func UpdateWorkerCount(n int) {
	if globalManager.enabled {
		globalManager.workerCount.Set(float64(n))
	}
}

// Snapshot flattens the global registry for end-of-run logging.
func Snapshot() (map[string]float64, error) {
	return globalManager.Snapshot()
}

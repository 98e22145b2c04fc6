package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/sememeval"
)

// MetricsFile is the file name of the Prometheus text export.
const MetricsFile = "metrics.prom"

// PrometheusCollector implements sememeval.MetricsCollector on Prometheus
// counters and histograms.
type PrometheusCollector struct {
	registry *prometheus.Registry

	loads         *prometheus.CounterVec
	loadedItems   *prometheus.CounterVec
	loadLatency   *prometheus.HistogramVec
	searchLatency prometheus.Histogram
	searchScanned prometheus.Counter
	evaluated     *prometheus.CounterVec
	degenerate    prometheus.Counter
	evalLatency   prometheus.Histogram
	averagePrec   prometheus.Histogram
	f1            prometheus.Histogram
}

var _ sememeval.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates a collector registered on its own registry.
func NewPrometheusCollector() *PrometheusCollector {
	scoreBuckets := prometheus.LinearBuckets(0, 0.1, 11)

	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sememeval_loads_total",
			Help: "Dataset files read",
		}, []string{"file", "status"}),
		loadedItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sememeval_loaded_items_total",
			Help: "Entries kept from dataset files",
		}, []string{"file"}),
		loadLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sememeval_load_duration_seconds",
			Help:    "Time to read one dataset file",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"file"}),
		searchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sememeval_search_duration_seconds",
			Help:    "Latency of one nearest-neighbour ranking",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		searchScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sememeval_search_candidates_total",
			Help: "Source vectors scanned by rankings",
		}),
		evaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sememeval_words_evaluated_total",
			Help: "Target words evaluated",
		}, []string{"status"}),
		degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sememeval_degenerate_ap_total",
			Help: "Words without any correct sememe in the ranking",
		}),
		evalLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sememeval_evaluate_duration_seconds",
			Help:    "Latency of one word evaluation",
			Buckets: prometheus.DefBuckets,
		}),
		averagePrec: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sememeval_average_precision",
			Help:    "Distribution of per-word average precision",
			Buckets: scoreBuckets,
		}),
		f1: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sememeval_f1",
			Help:    "Distribution of per-word F1",
			Buckets: scoreBuckets,
		}),
	}

	c.registry.MustRegister(
		c.loads,
		c.loadedItems,
		c.loadLatency,
		c.searchLatency,
		c.searchScanned,
		c.evaluated,
		c.degenerate,
		c.evalLatency,
		c.averagePrec,
		c.f1,
	)
	return c
}

// Registry returns the registry the collector's metrics live on.
func (c *PrometheusCollector) Registry() *prometheus.Registry { return c.registry }

// RecordLoad implements sememeval.MetricsCollector.
func (c *PrometheusCollector) RecordLoad(name string, kept int, d time.Duration, err error) {
	c.loads.WithLabelValues(name, status(err)).Inc()
	if err != nil {
		return
	}
	c.loadedItems.WithLabelValues(name).Add(float64(kept))
	c.loadLatency.WithLabelValues(name).Observe(d.Seconds())
}

// RecordSearch implements sememeval.MetricsCollector.
func (c *PrometheusCollector) RecordSearch(_ int, candidates int, d time.Duration) {
	c.searchLatency.Observe(d.Seconds())
	c.searchScanned.Add(float64(candidates))
}

// RecordEvaluate implements sememeval.MetricsCollector.
func (c *PrometheusCollector) RecordEvaluate(rec *sememeval.Record, d time.Duration, err error) {
	c.evaluated.WithLabelValues(status(err)).Inc()
	c.evalLatency.Observe(d.Seconds())
	if err != nil {
		return
	}
	if rec.Degenerate {
		c.degenerate.Inc()
	}
	c.averagePrec.Observe(rec.AP)
	c.f1.Observe(rec.F1)
}

// WriteMetrics writes the collector's metrics to path in the Prometheus text
// format. The file is replaced atomically.
func (c *PrometheusCollector) WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

// MetricsBytes renders the collector's metrics in the Prometheus text format.
func (c *PrometheusCollector) MetricsBytes() ([]byte, error) {
	dir, err := os.MkdirTemp("", "sememeval-metrics-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, MetricsFile)
	if err := c.WriteMetrics(path); err != nil {
		return nil, fmt.Errorf("write metrics: %w", err)
	}
	return os.ReadFile(path)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

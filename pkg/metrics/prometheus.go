// Package metrics provides Prometheus metrics for the departed data
// pipeline. A scrape batch runs for many minutes because of the
// per-request delay against Wikidata, so progress is exposed on an
// optional /metrics listener while the batch executes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all Prometheus metrics for the pipeline tools.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Scrape progress
	sparqlQueries     prometheus.Counter
	sparqlQueryErrors *prometheus.CounterVec
	sparqlRowsFetched prometheus.Counter
	sparqlRequestSecs prometheus.Histogram
	candidatesKept    prometheus.Gauge
	candidatesDropped *prometheus.CounterVec
	poolAlivePct      prometheus.Gauge

	// Generation progress
	daysGenerated prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "departed",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         customRegistry,
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

	m.sparqlQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sparql_queries_total",
		Help:      "Total number of SPARQL queries issued",
	})

	m.sparqlQueryErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "sparql_query_errors_total",
			Help:      "Total number of failed SPARQL queries by kind",
		},
		[]string{"kind"},
	)

	m.sparqlRowsFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sparql_rows_fetched_total",
		Help:      "Total number of result rows fetched from the endpoint",
	})

	m.sparqlRequestSecs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sparql_request_duration_seconds",
		Help:      "SPARQL request duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.candidatesKept = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_kept",
		Help:      "Number of unique candidates kept after processing",
	})

	m.candidatesDropped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "candidates_dropped_total",
			Help:      "Total number of result rows dropped by reason",
		},
		[]string{"reason"},
	)

	m.poolAlivePct = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_alive_percent",
		Help:      "Share of living celebrities in the selected pool",
	})

	m.daysGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "days_generated_total",
		Help:      "Total number of daily files written",
	})
}

// RecordSPARQLQuery increments the issued-query counter.
func RecordSPARQLQuery() {
	globalManager.sparqlQueries.Inc()
}

// RecordSPARQLQueryError increments the failed-query counter for a kind
// (timeout, transport, status, decode).
func RecordSPARQLQueryError(kind string) {
	globalManager.sparqlQueryErrors.WithLabelValues(kind).Inc()
}

// RecordSPARQLRows adds fetched result rows to the row counter.
func RecordSPARQLRows(n int) {
	globalManager.sparqlRowsFetched.Add(float64(n))
}

// RecordSPARQLRequestDuration records one request duration in seconds.
func RecordSPARQLRequestDuration(seconds float64) {
	globalManager.sparqlRequestSecs.Observe(seconds)
}

// UpdateCandidatesKept sets the unique-candidate gauge.
func UpdateCandidatesKept(count int) {
	globalManager.candidatesKept.Set(float64(count))
}

// RecordCandidateDropped increments the dropped-row counter for a
// reason (duplicate, id_shaped_name, missing_field).
func RecordCandidateDropped(reason string) {
	globalManager.candidatesDropped.WithLabelValues(reason).Inc()
}

// UpdatePoolAlivePercent sets the alive-share gauge for the selected pool.
func UpdatePoolAlivePercent(pct float64) {
	globalManager.poolAlivePct.Set(pct)
}

// RecordDayGenerated increments the daily-file counter.
func RecordDayGenerated() {
	globalManager.daysGenerated.Inc()
}

// Handler returns an http.Handler serving the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

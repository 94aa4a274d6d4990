// Package metrics provides Prometheus metrics for the scouting engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector exported by the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Event data pipeline
	eventLoads        *prometheus.CounterVec
	eventLoadDuration prometheus.Histogram
	fetchFailures     *prometheus.CounterVec
	staleLoadsDropped prometheus.Counter
	partialMatches    prometheus.Counter
	datasetSize       *prometheus.GaugeVec

	// Event directory
	directorySearches *prometheus.CounterVec
	debouncedQueries  prometheus.Counter
	devActivations    prometheus.Counter

	// Upstream service
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "wikiscout",
		subsystem:        "engine",
		histogramBuckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventLoads = auto.NewCounterVec(
		m.counterOpts("event_loads_total", "Event data loads applied, by dataset source (backend or demo)"),
		[]string{"source"},
	)
	m.eventLoadDuration = auto.NewHistogram(
		m.histogramOpts("event_load_duration_milliseconds", "Wall time of a full teams/rankings/matches load"),
	)
	m.fetchFailures = auto.NewCounterVec(
		m.counterOpts("fetch_failures_total", "Upstream calls that failed and were defaulted to empty"),
		[]string{"call"},
	)
	m.staleLoadsDropped = auto.NewCounter(
		m.counterOpts("stale_loads_dropped_total", "Event loads discarded because a newer selection superseded them"),
	)
	m.partialMatches = auto.NewCounter(
		m.counterOpts("partial_matches_total", "Matches with only one alliance score, demoted to not completed"),
	)
	m.datasetSize = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "dataset_records",
			Help:        "Records in the active event dataset, by kind",
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.directorySearches = auto.NewCounterVec(
		m.counterOpts("directory_searches_total", "Event directory fetches issued, by mode"),
		[]string{"mode"},
	)
	m.debouncedQueries = auto.NewCounter(
		m.counterOpts("debounced_queries_total", "Directory queries superseded before their quiet period elapsed"),
	)
	m.devActivations = auto.NewCounter(
		m.counterOpts("dev_event_activations_total", "Times the dev sentinel selected the synthetic test event"),
	)

	m.upstreamRequests = auto.NewCounterVec(
		m.counterOpts("upstream_requests_total", "Requests to the event-information service"),
		[]string{"endpoint", "status"},
	)
	m.upstreamLatency = auto.NewHistogramVec(
		m.histogramOpts("upstream_latency_milliseconds", "Latency of requests to the event-information service"),
		[]string{"endpoint"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "HTTP requests served, by endpoint, method and status"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordEventLoad counts an applied event load by source.
func RecordEventLoad(source string) {
	globalManager.eventLoads.WithLabelValues(source).Inc()
}

// RecordEventLoadDuration observes a load's wall time in milliseconds.
func RecordEventLoadDuration(ms float64) {
	globalManager.eventLoadDuration.Observe(ms)
}

// RecordFetchFailure counts an upstream call defaulted to empty.
func RecordFetchFailure(call string) {
	globalManager.fetchFailures.WithLabelValues(call).Inc()
}

// RecordStaleLoadDropped counts a superseded load.
func RecordStaleLoadDropped() {
	globalManager.staleLoadsDropped.Inc()
}

// RecordPartialMatch counts a match with a single alliance score.
func RecordPartialMatch() {
	globalManager.partialMatches.Inc()
}

// UpdateDatasetSize sets the active dataset record counts.
func UpdateDatasetSize(teams, rankings, matches int) {
	globalManager.datasetSize.WithLabelValues("teams").Set(float64(teams))
	globalManager.datasetSize.WithLabelValues("rankings").Set(float64(rankings))
	globalManager.datasetSize.WithLabelValues("matches").Set(float64(matches))
}

// RecordDirectorySearch counts a directory fetch for mode.
func RecordDirectorySearch(mode string) {
	globalManager.directorySearches.WithLabelValues(mode).Inc()
}

// RecordDebouncedQuery counts a suppressed query.
func RecordDebouncedQuery() {
	globalManager.debouncedQueries.Inc()
}

// RecordDevActivation counts a dev sentinel activation.
func RecordDevActivation() {
	globalManager.devActivations.Inc()
}

// RecordUpstreamRequest counts one upstream request and observes its latency.
func RecordUpstreamRequest(endpoint, status string, latencyMs float64) {
	globalManager.upstreamRequests.WithLabelValues(endpoint, status).Inc()
	globalManager.upstreamLatency.WithLabelValues(endpoint).Observe(latencyMs)
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds all Prometheus metrics for Routeview
type MetricsRegistry struct {
	registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Search Metrics
	SearchesTotal        *prometheus.CounterVec
	SearchDuration       prometheus.Histogram
	ConflictChecksTotal  *prometheus.CounterVec
	StaleChecksDiscarded prometheus.Counter
	MapOverlaysBuilt     prometheus.Counter

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics bound to a private registry, exposed via Handler.
func NewMetricsRegistry() *MetricsRegistry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &MetricsRegistry{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeview_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routeview_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "routeview_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeview_searches_total",
				Help: "Total route searches by outcome (found, empty, error)",
			},
			[]string{"outcome"},
		),
		SearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "routeview_search_duration_seconds",
				Help:    "End-to-end route search latency, backend call included",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		ConflictChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeview_conflict_checks_total",
				Help: "Total conflict validations by result (clean, conflicts, error)",
			},
			[]string{"result"},
		),
		StaleChecksDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "routeview_stale_validations_discarded_total",
				Help: "Conflict validation responses discarded for carrying a stale search generation",
			},
		),
		MapOverlaysBuilt: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "routeview_map_overlays_built_total",
				Help: "Total map overlays rebuilt for tab or search changes",
			},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeview_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routeview_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
	}
}

// Handler exposes this registry's metrics in Prometheus text format.
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

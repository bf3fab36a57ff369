// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodshelf"

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommended items by kind and strategy",
		},
		[]string{"kind", "method"}, // method: cluster, content, diversity, raw
	)

	RecommendationsDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_degraded_total",
			Help:      "Total number of recommendation calls that skipped scoring",
		},
		[]string{"kind", "reason"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "End-to-end duration of a recommendation call including pool fetches",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"kind"},
	)

	PoolExpansions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_expansions_total",
			Help:      "Total number of candidate pools expanded with neighboring clusters",
		},
		[]string{"kind"},
	)

	PoolSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pool_size",
			Help:      "Size of the candidate pool handed to the orchestrator",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10, 15, 25, 50},
		},
		[]string{"kind"},
	)

	ClusterAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cluster_assignments_total",
			Help:      "Total number of user vectors assigned to each cluster",
		},
		[]string{"cluster"},
	)

	// Catalog Store Metrics
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_query_duration_seconds",
			Help:      "Duration of catalog store operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	CatalogQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_query_errors_total",
			Help:      "Total number of failed catalog store operations",
		},
		[]string{"backend", "operation"},
	)

	CatalogHealthy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_healthy",
			Help:      "Whether the last catalog ping succeeded (1) or failed (0)",
		},
	)

	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_items",
			Help:      "Number of catalog items per kind at the last health probe",
		},
		[]string{"kind"},
	)

	// Pool Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_cache_hits_total",
			Help:      "Total number of cluster pool cache hits",
		},
		[]string{"kind"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pool_cache_misses_total",
			Help:      "Total number of cluster pool cache misses",
		},
		[]string{"kind"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_requests_total",
			Help:      "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state_transitions_total",
			Help:      "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of active API requests",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "app_info",
			Help:      "Application version and build information",
		},
		[]string{"version", "go_version", "catalog_backend"},
	)
)

// RecordCatalogQuery records the duration and outcome of one store operation.
func RecordCatalogQuery(backend, operation string, duration time.Duration, err error) {
	CatalogQueryDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		CatalogQueryErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordRecommendation records the outcome of one recommendation call.
// An empty method (degraded path) is recorded as "raw".
func RecordRecommendation(kind string, methods []string, degradedReason string, poolSize int, expanded bool, duration time.Duration) {
	for _, m := range methods {
		if m == "" {
			m = "raw"
		}
		RecommendationsTotal.WithLabelValues(kind, m).Inc()
	}
	if degradedReason != "" {
		RecommendationsDegraded.WithLabelValues(kind, degradedReason).Inc()
	}
	if expanded {
		PoolExpansions.WithLabelValues(kind).Inc()
	}
	PoolSize.WithLabelValues(kind).Observe(float64(poolSize))
	RecommendationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetCatalogHealth sets the catalog health gauge.
func SetCatalogHealth(ok bool) {
	if ok {
		CatalogHealthy.Set(1)
		return
	}
	CatalogHealthy.Set(0)
}

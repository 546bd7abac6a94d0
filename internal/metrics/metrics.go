// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	DBRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_retries_total",
			Help: "Total number of retried DuckDB reads",
		},
		[]string{"operation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Engine Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"result"}, // "ok", "empty", "failed"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylist_recommend_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylist_recommend_candidates",
			Help:    "Number of candidate outfits after filtering",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 150, 200},
		},
	)

	RecommendBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_recommend_batches_total",
			Help: "Total number of scoring batches by outcome",
		},
		[]string{"outcome"}, // "completed", "timeout"
	)

	RecommendEarlyTerminations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylist_recommend_early_terminations_total",
			Help: "Total number of requests that stopped scoring early",
		},
	)

	RecommendScoringErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylist_recommend_scoring_errors_total",
			Help: "Total number of outfits dropped because scoring failed",
		},
	)

	// Profile Cache Metrics
	ProfileCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylist_profile_cache_lookups_total",
			Help: "Total number of profile cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	ProfileCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylist_profile_cache_entries",
			Help: "Current number of cached user profiles",
		},
	)

	ProfileCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylist_profile_cache_evictions_total",
			Help: "Total number of expired profile cache entries removed",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
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

// RecordRecommendation records the outcome of one recommendation request.
func RecordRecommendation(result string, candidates int, duration time.Duration) {
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendCandidates.Observe(float64(candidates))
	RecommendDuration.Observe(duration.Seconds())
}

// RecordBatch records a scoring batch outcome.
func RecordBatch(timedOut bool) {
	if timedOut {
		RecommendBatches.WithLabelValues("timeout").Inc()
		return
	}
	RecommendBatches.WithLabelValues("completed").Inc()
}

// RecordProfileCacheLookup records a profile cache hit or miss.
func RecordProfileCacheLookup(hit bool) {
	if hit {
		ProfileCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	ProfileCacheLookups.WithLabelValues("miss").Inc()
}

// RecordProfileCacheEvictions updates eviction and size metrics after a sweep.
func RecordProfileCacheEvictions(evicted, remaining int) {
	if evicted > 0 {
		ProfileCacheEvictions.Add(float64(evicted))
	}
	ProfileCacheEntries.Set(float64(remaining))
}

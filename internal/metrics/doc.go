// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - stylist_recommend_requests_total: Requests by result (counter)
    Labels: result (ok, empty, failed)
  - stylist_recommend_duration_seconds: End-to-end latency (histogram)
  - stylist_recommend_candidates: Candidates after filtering (histogram)
  - stylist_recommend_batches_total: Scoring batches (counter)
    Labels: outcome (completed, timeout)
  - stylist_recommend_early_terminations_total: Early stops (counter)
  - stylist_recommend_scoring_errors_total: Dropped outfits (counter)

Profile Cache Metrics:
  - stylist_profile_cache_lookups_total: Lookups (counter)
    Labels: result (hit, miss)
  - stylist_profile_cache_entries: Cached profiles (gauge)
  - stylist_profile_cache_evictions_total: Expired entries removed (counter)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation
  - duckdb_query_retries_total: Retried reads (counter)
    Labels: operation

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
    Labels: name
  - circuit_breaker_requests_total: Requests (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

API Metrics:
  - api_requests_total: Requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

# Usage

	start := time.Now()
	err := query()
	metrics.RecordDBQuery("liked_outfits", time.Since(start), err)

# Thread Safety

All functions are safe for concurrent use; Prometheus collectors are
internally synchronized.
*/
package metrics

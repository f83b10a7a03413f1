// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

/*
Package metrics exposes Waypoint's Prometheus metrics.

All collectors are registered on the default registry through promauto and
served by promhttp at /metrics.

# Available Metrics

Recommendation Metrics:
  - waypoint_recommendations_total: Served recommendations (counter)
    Labels: path (history, cold_start), outcome (success, error)
  - waypoint_recommendation_duration_seconds: End-to-end latency (histogram)
  - waypoint_recommendation_errors_total: Failures (counter)
    Labels: kind (unknown_category, no_candidate, ...)
  - waypoint_sampled_categories_total: Sampled next categories (counter)
    Labels: category

Dataset Metrics:
  - waypoint_dataset_rows: Rows in the serving table (gauge)
  - waypoint_dataset_users: Distinct users in the serving table (gauge)
  - waypoint_dataset_load_duration_seconds: Load time (histogram)
  - waypoint_dataset_loads_total: Loads (counter)
    Labels: result (success, failure)
  - waypoint_dataset_last_load_timestamp: Unix time of the last good load (gauge)
  - duckdb_query_duration_seconds: DuckDB statement time (histogram)
    Labels: operation

Cache Metrics:
  - waypoint_cache_lookups_total: Lookups (counter)
    Labels: cache, result (hit, miss)
  - waypoint_cache_entries: Live entries (gauge)
    Labels: cache

HTTP Metrics:
  - api_requests_total: Requests (counter)
    Labels: method, endpoint, status
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Calls by result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total (counter)

# Usage

	start := time.Now()
	rec, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation(coldStart, rec.Category, time.Since(start), recommend.ErrorKind(err))
*/
package metrics

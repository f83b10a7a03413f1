// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

// Package config loads Waypoint's configuration.
//
// Configuration is layered with koanf, each layer overriding the previous:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths
//  3. Environment variables mapped by envTransformFunc
//
// The merged result is validated before it is returned.
//
// # Environment Variables
//
// Dataset:
//   - RATINGS_CSV, USERS_CSV, PLACES_CSV: input CSV paths
//   - DUCKDB_PATH: DuckDB database file ("" for in-memory)
//   - DUCKDB_THREADS, DUCKDB_MAX_MEMORY: DuckDB resource limits
//   - DATASET_LOAD_TIMEOUT: timeout for one load (e.g. "2m")
//   - DATASET_BREAKER_FAILURES, DATASET_BREAKER_TIMEOUT: circuit breaker
//   - DATASET_REFRESH_INTERVAL: periodic reload interval ("0" disables)
//
// Recommendation:
//   - RECOMMEND_SEED: seed for category sampling
//   - RECOMMEND_BUDGET_MULTIPLIER: price cap relative to average spend
//   - RECOMMEND_DEFAULT_CITY: city used when a request omits one
//   - RECOMMEND_RANKING_CACHE_TTL: city ranking cache lifetime ("0" disables)
//
// Server:
//   - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - ENVIRONMENT: development or production
//
// Security:
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//   - CORS_ORIGINS: comma-separated origins
//   - ADMIN_TOKEN: bearer token for admin endpoints
//
// Logging:
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// # Example
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
package config

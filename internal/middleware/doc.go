// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

/*
Package middleware provides HTTP middleware shared by the API router.

  - Compression: gzip for clients sending Accept-Encoding: gzip
  - PerformanceMonitor: a sliding window of request latencies per chi route,
    with percentile summaries and slow request logging

Request IDs, CORS, rate limiting, admin auth and Prometheus instrumentation
live in the api package next to the router that configures them.

Usage:

	perf := middleware.NewPerformanceMonitor(1000, time.Second)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(perf.Middleware)
	    r.Use(middleware.Compression)
	    r.Get("/health", h.Health)
	})
	stats := perf.Stats()

Both middlewares are safe for concurrent use.
*/
package middleware

// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

/*
Package cache provides a typed in-memory TTL cache.

recommend.RankingCache uses it to reuse per-city age-cohort rankings
between requests. Rankings depend only on the serving table, so callers store the
table pointer next to the cached value and treat a mismatch as a miss, or
call Clear after a reload.

Each cache reports waypoint_cache_lookups_total{cache,result} and
waypoint_cache_entries{cache} under the name passed to New.

Thread safety: all methods are safe for concurrent use.
*/
package cache

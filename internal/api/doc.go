// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

/*
Package api exposes the recommender over HTTP using the chi router.

# Routes

All routes live under /api/v1:

	GET  /health                        status, table size and engine counters
	GET  /categories                    categories present in the table
	GET  /cities                        cities present in the table
	GET  /users                         known user ids
	GET  /users/{userID}/preferences    category preference distribution
	GET  /users/{userID}/transitions    category transition matrix
	GET  /users/{userID}/history        places visited, in table order
	GET  /cities/{city}/ranking         per-cohort place ranking for a city
	GET  /recommendations               ?user_id=&category=&city=&seed=
	POST /admin/reload                  reload the dataset (bearer admin token)
	GET  /admin/performance             per-route latency percentiles (bearer admin token)

GET /metrics serves Prometheus metrics outside the versioned prefix.

# Responses

Every endpoint answers with models.APIResponse. Recommendation errors map to
status codes by kind: an unknown category is 400, an exhausted candidate list
is 404 and anything else is 500.

# Middleware

Global: request id with logging context, real IP, panic recovery, CORS.
Versioned routes add httprate rate limiting, Prometheus instrumentation
keyed by route pattern, the latency window behind /admin/performance and
gzip compression. City rankings come from the engine's ranking provider,
which main backs with a per-table cache for RECOMMEND_RANKING_CACHE_TTL.
*/
package api

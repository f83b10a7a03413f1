// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

// Package main is the Waypoint HTTP server.
//
// Startup order:
//
//  1. Configuration: koanf defaults, optional config.yaml, environment
//  2. Logging: zerolog global logger
//  3. Dataset: DuckDB joins the ratings, users and places CSVs
//  4. Engine: recommender over the loaded table
//  5. Supervisor tree: HTTP server, plus the dataset refresher when
//     DATASET_REFRESH_INTERVAL is set
//
// SIGINT and SIGTERM cancel the tree; the HTTP server drains for
// HTTP_SHUTDOWN_TIMEOUT before the process exits.
//
// Example:
//
//	export RATINGS_CSV=data/indonesia_tourism_rating.csv
//	export USERS_CSV=data/indonesia_tourism_user.csv
//	export PLACES_CSV=data/indonesia_tourism.csv
//	export ADMIN_TOKEN=c52016ced0d479472540ce49c1c5304a20dffe28081a1ac9efec62f42f80b574
//	./waypoint
//
//	curl 'localhost:8080/api/v1/recommendations?user_id=1&category=Culture&city=Jakarta'
package main

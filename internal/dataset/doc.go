// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

// Package dataset builds the flat review table from the three tourism CSVs.
//
// The ratings, users and places files are joined inside DuckDB with
// read_csv_auto, deduplicated and ordered by user id ascending, review
// rating descending and place score descending. Rows are then normalized in
// Go: ages are binned into cohorts and raw category codes are translated to
// display names. The result is handed to recommend.NewTable, which
// re-checks the ordering.
//
// Loads run behind a gobreaker circuit breaker and a per-load timeout, so a
// broken input file fails fast on repeated reload attempts instead of
// repeatedly scanning large CSVs.
//
//	loader, err := dataset.New(&cfg.Dataset)
//	if err != nil {
//	    return err
//	}
//	defer loader.Close()
//
//	table, err := loader.Load(ctx)
package dataset

// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// DatasetLogger writes dataset lifecycle events with consistent fields.
type DatasetLogger struct {
	logger zerolog.Logger
}

// NewDatasetLogger creates a DatasetLogger on the global logger.
func NewDatasetLogger() *DatasetLogger {
	return NewDatasetLoggerWithLogger(Logger())
}

// NewDatasetLoggerWithLogger creates a DatasetLogger on a custom logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDatasetLoggerWithLogger(logger zerolog.Logger) *DatasetLogger {
	return &DatasetLogger{logger: logger.With().Str("component", "dataset").Logger()}
}

// LoadStarted logs the start of a load from the given CSV paths.
func (d *DatasetLogger) LoadStarted(reviewsPath, placesPath, usersPath string) {
	d.logger.Info().
		Str("reviews_path", reviewsPath).
		Str("places_path", placesPath).
		Str("users_path", usersPath).
		Msg("loading dataset")
}

// LoadFinished logs a successful load.
func (d *DatasetLogger) LoadFinished(rows, users, places int, elapsed time.Duration) {
	d.logger.Info().
		Int("rows", rows).
		Int("users", users).
		Int("places", places).
		Dur("elapsed", elapsed).
		Msg("dataset loaded")
}

// LoadFailed logs a failed load.
func (d *DatasetLogger) LoadFailed(err error, elapsed time.Duration) {
	d.logger.Error().
		Err(err).
		Dur("elapsed", elapsed).
		Msg("dataset load failed")
}

// RowsSkipped logs rows dropped during normalization.
func (d *DatasetLogger) RowsSkipped(count int, reason string) {
	if count == 0 {
		return
	}
	d.logger.Warn().
		Int("count", count).
		Str("reason", reason).
		Msg("dataset rows skipped")
}

// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import "github.com/tomtom215/waypoint/internal/models"

// Request is a single recommendation request.
type Request struct {
	// UserID is the user to recommend for. Unknown users take the
	// cold-start path.
	UserID int `json:"user_id" validate:"gte=0"`

	// Category is the category of the page the user is viewing.
	Category string `json:"category" validate:"required,category"`

	// City restricts the recommended place to one city.
	City string `json:"city" validate:"required,max=100"`

	// Seed, when non-zero, makes category sampling for this request
	// deterministic and independent of the engine's shared source.
	Seed int64 `json:"seed,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Recommendation is the result of Engine.Recommend.
type Recommendation struct {
	UserID int `json:"user_id"`

	// ColdStart is true when the user had no history.
	ColdStart bool `json:"cold_start"`

	// FromCategory is the category the request started from.
	FromCategory string `json:"from_category"`

	// Category is the sampled next category.
	Category string `json:"category"`

	// City is the city the place was selected in.
	City string `json:"city"`

	// Place is the selected place.
	Place models.Place `json:"place"`

	// Preferences is the distribution the category was sampled from.
	Preferences []Preference `json:"preferences"`

	RequestID string `json:"request_id,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// Stats is a snapshot of engine counters.
type Stats struct {
	RequestCount   int64 `json:"request_count"`
	ColdStartCount int64 `json:"cold_start_count"`
	ErrorCount     int64 `json:"error_count"`
	TableRows      int   `json:"table_rows"`
	TableUsers     int   `json:"table_users"`
}

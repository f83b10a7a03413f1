// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"github.com/tomtom215/waypoint/internal/middleware"
	"github.com/tomtom215/waypoint/internal/recommend"
)

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status         string  `json:"status"`
	TableRows      int     `json:"table_rows"`
	TableUsers     int     `json:"table_users"`
	RequestCount   int64   `json:"request_count"`
	ColdStartCount int64   `json:"cold_start_count"`
	ErrorCount     int64   `json:"error_count"`
	Uptime         float64 `json:"uptime_seconds"`
}

// UserPreferences is the payload of GET /users/{userID}/preferences.
type UserPreferences struct {
	UserID      int                    `json:"user_id"`
	ColdStart   bool                   `json:"cold_start"`
	Preferences []recommend.Preference `json:"preferences"`
}

// UserTransitions is the payload of GET /users/{userID}/transitions.
type UserTransitions struct {
	UserID      int                    `json:"user_id"`
	ColdStart   bool                   `json:"cold_start"`
	Transitions []recommend.Transition `json:"transitions"`
}

// UserHistory is the payload of GET /users/{userID}/history.
type UserHistory struct {
	UserID   int   `json:"user_id"`
	PlaceIDs []int `json:"place_ids"`
}

// CityRanking is the payload of GET /cities/{city}/ranking.
type CityRanking struct {
	City    string                   `json:"city"`
	Entries []recommend.RankingEntry `json:"entries"`
}

// ReloadResult is the payload of POST /admin/reload.
type ReloadResult struct {
	PreviousRows int `json:"previous_rows"`
	Rows         int `json:"rows"`
	Users        int `json:"users"`
}

// PerformanceReport is the payload of GET /admin/performance.
type PerformanceReport struct {
	Routes []middleware.RouteStats    `json:"routes"`
	Recent []middleware.RequestSample `json:"recent"`
}

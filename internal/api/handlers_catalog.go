// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/waypoint/internal/models"
)

// Categories lists the categories present in the loaded table.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.engine.Table().Categories(), start)
}

// Cities lists the cities present in the loaded table.
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.engine.Table().Cities(), start)
}

// Users lists the known user ids in ascending order.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.engine.Table().UserIDs(), start)
}

// CityRanking returns the per-cohort place ranking for {city}.
func (h *Handler) CityRanking(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	city := pathParam(r, "city")

	table := h.engine.Table()
	if !table.HasCity(city) {
		respondAPIError(w, http.StatusNotFound, &models.APIError{
			Code:    "UNKNOWN_CITY",
			Message: "City not found: " + city,
		})
		return
	}

	respondSuccess(w, CityRanking{
		City:    city,
		Entries: h.engine.Ranking(city, table),
	}, start)
}

// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/waypoint/internal/recommend"
)

// UserPreferences returns the category preference distribution for
// {userID}. Unknown users receive the uniform cold-start distribution.
func (h *Handler) UserPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	table := h.engine.Table()
	prefs, err := recommend.EstimatePreferences(userID, table)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to estimate preferences", err)
		return
	}

	respondSuccess(w, UserPreferences{
		UserID:      userID,
		ColdStart:   !table.HasUser(userID),
		Preferences: prefs,
	}, start)
}

// UserTransitions returns the category transition matrix for {userID}.
func (h *Handler) UserTransitions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	table := h.engine.Table()
	prefs, err := recommend.EstimatePreferences(userID, table)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to estimate preferences", err)
		return
	}
	matrix, err := recommend.BuildTransitionMatrix(prefs)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to build transition matrix", err)
		return
	}

	respondSuccess(w, UserTransitions{
		UserID:      userID,
		ColdStart:   !table.HasUser(userID),
		Transitions: matrix.Entries(),
	}, start)
}

// UserHistory returns the place ids {userID} has reviewed, in table order.
func (h *Handler) UserHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	history := recommend.ExtractHistory(userID, h.engine.Table())
	if history == nil {
		history = []int{}
	}
	respondSuccess(w, UserHistory{UserID: userID, PlaceIDs: history}, start)
}

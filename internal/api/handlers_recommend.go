// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/waypoint/internal/logging"
	"github.com/tomtom215/waypoint/internal/metrics"
	"github.com/tomtom215/waypoint/internal/models"
	"github.com/tomtom215/waypoint/internal/recommend"
)

// Recommendations samples the next category for a user and picks a place.
//
// Query parameters:
//   - user_id (required): reviewing user; unknown users take the cold-start path
//   - category (required): the category the user is currently in
//   - city: target city, defaults to recommend.default_city
//   - seed: non-zero seed for a reproducible draw
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	userID, err := strconv.Atoi(q.Get("user_id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "user_id must be an integer", nil)
		return
	}

	var seed int64
	if raw := q.Get("seed"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "seed must be an integer", nil)
			return
		}
	}

	city := q.Get("city")
	if city == "" && h.config != nil {
		city = h.config.Recommend.DefaultCity
	}

	req := recommend.Request{
		UserID:    userID,
		Category:  q.Get("category"),
		City:      city,
		Seed:      seed,
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	coldStart := !h.engine.Table().HasUser(userID)
	rec, err := h.engine.Recommend(r.Context(), req)
	if err != nil {
		metrics.RecordRecommendation(coldStart, "", time.Since(start), recommend.ErrorKind(err))
		status, code := recommendErrorStatus(err)
		logging.Ctx(r.Context()).Warn().
			Err(err).
			Int("user_id", userID).
			Str("category", sanitizeLogValue(req.Category)).
			Str("city", sanitizeLogValue(city)).
			Msg("recommendation failed")
		respondAPIError(w, status, &models.APIError{Code: code, Message: err.Error()})
		return
	}

	metrics.RecordRecommendation(rec.ColdStart, rec.Category, time.Since(start), "")
	respondSuccess(w, rec, start)
}

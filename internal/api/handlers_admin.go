// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"errors"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/waypoint/internal/recommend"
)

// ReloadDataset reloads the CSV inputs and swaps the engine table. Requests
// already running keep the table they started with.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.loader == nil {
		respondError(w, r, http.StatusServiceUnavailable, "RELOAD_DISABLED", ErrReloadDisabled.Error(), nil)
		return
	}

	result, err := h.engine.Reload(r.Context(), h.loader)
	switch {
	case err == nil:
	case errors.Is(err, recommend.ErrReloadInProgress):
		respondError(w, r, http.StatusConflict, "RELOAD_IN_PROGRESS", err.Error(), nil)
		return
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, r, http.StatusServiceUnavailable, "RELOAD_UNAVAILABLE", "Dataset loads are failing; retry later", err)
		return
	default:
		respondError(w, r, http.StatusInternalServerError, "RELOAD_FAILED", "Failed to reload dataset", err)
		return
	}

	respondSuccess(w, ReloadResult{
		PreviousRows: result.PreviousRows,
		Rows:         result.Rows,
		Users:        result.Users,
	}, start)
}

// recentSamples is how many raw samples the performance report includes.
const recentSamples = 20

// Performance reports per-route latency over the recent request window.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, PerformanceReport{
		Routes: h.perf.Stats(),
		Recent: h.perf.Recent(recentSamples),
	}, start)
}

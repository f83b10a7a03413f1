// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"net/http"
	"time"
)

// Health reports the table size and engine counters. The service is
// "degraded" when the loaded table is empty.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()

	status := "healthy"
	if stats.TableRows == 0 {
		status = "degraded"
	}

	respondSuccess(w, HealthStatus{
		Status:         status,
		TableRows:      stats.TableRows,
		TableUsers:     stats.TableUsers,
		RequestCount:   stats.RequestCount,
		ColdStartCount: stats.ColdStartCount,
		ErrorCount:     stats.ErrorCount,
		Uptime:         time.Since(h.startTime).Seconds(),
	}, start)
}

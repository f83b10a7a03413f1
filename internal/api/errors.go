// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/waypoint/internal/recommend"
)

// Sentinel errors for API-level failures.
var (
	// ErrReloadDisabled indicates no table loader or admin token is configured.
	ErrReloadDisabled = errors.New("dataset reload is not enabled")
)

// recommendErrorStatus maps an engine error to a status code and API error
// code.
func recommendErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrUnknownCategory):
		return http.StatusBadRequest, "UNKNOWN_CATEGORY"
	case errors.Is(err, recommend.ErrNoCandidateAvailable):
		return http.StatusNotFound, "NO_CANDIDATE"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "REQUEST_CANCELED"
	default:
		return http.StatusInternalServerError, "RECOMMENDATION_ERROR"
	}
}

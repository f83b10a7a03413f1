// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"time"

	"github.com/tomtom215/waypoint/internal/config"
	"github.com/tomtom215/waypoint/internal/middleware"
	"github.com/tomtom215/waypoint/internal/recommend"
)

const (
	performanceWindow    = 1000
	slowRequestThreshold = time.Second
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health endpoint
//   - handlers_catalog.go: categories, cities, users, city ranking
//   - handlers_users.go: per-user preferences, transitions, history
//   - handlers_recommend.go: recommendations
//   - handlers_admin.go: dataset reload, performance report
type Handler struct {
	engine    *recommend.Engine
	loader    recommend.TableSource
	config    *config.Config
	perf      *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a handler serving engine. loader may be nil, in which
// case reloads answer 503.
func NewHandler(engine *recommend.Engine, loader recommend.TableSource, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		loader:    loader,
		config:    cfg,
		perf:      middleware.NewPerformanceMonitor(performanceWindow, slowRequestThreshold),
		startTime: time.Now(),
	}
}

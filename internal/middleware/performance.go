// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/waypoint/internal/logging"
)

// RequestSample is one observed API request.
type RequestSample struct {
	Method   string        `json:"method"`
	Route    string        `json:"route"`
	Status   int           `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	At       time.Time     `json:"at"`
}

// RouteStats aggregates the samples of one method and route.
type RouteStats struct {
	Route    string  `json:"route"`
	Requests int     `json:"requests"`
	Errors   int     `json:"errors"`
	AvgMS    float64 `json:"avg_ms"`
	P50MS    float64 `json:"p50_ms"`
	P95MS    float64 `json:"p95_ms"`
	P99MS    float64 `json:"p99_ms"`
	MinMS    float64 `json:"min_ms"`
	MaxMS    float64 `json:"max_ms"`
}

// PerformanceMonitor keeps a sliding window of recent request samples.
type PerformanceMonitor struct {
	mu      sync.RWMutex
	samples []RequestSample // ring buffer
	next    int
	full    bool
	slow    time.Duration
}

// NewPerformanceMonitor keeps the last capacity samples. Requests slower
// than slow are logged; zero disables slow request logging.
func NewPerformanceMonitor(capacity int, slow time.Duration) *PerformanceMonitor {
	if capacity < 1 {
		capacity = 1
	}
	return &PerformanceMonitor{
		samples: make([]RequestSample, capacity),
		slow:    slow,
	}
}

// Record adds a sample, overwriting the oldest when the window is full.
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.samples[pm.next] = s
	pm.next++
	if pm.next == len(pm.samples) {
		pm.next = 0
		pm.full = true
	}
}

// window returns the samples oldest first. Caller holds pm.mu.
func (pm *PerformanceMonitor) window() []RequestSample {
	if !pm.full {
		return pm.samples[:pm.next]
	}
	out := make([]RequestSample, 0, len(pm.samples))
	out = append(out, pm.samples[pm.next:]...)
	return append(out, pm.samples[:pm.next]...)
}

// Recent returns up to n of the newest samples, oldest first.
func (pm *PerformanceMonitor) Recent(n int) []RequestSample {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	w := pm.window()
	if n > len(w) {
		n = len(w)
	}
	if n <= 0 {
		return []RequestSample{}
	}
	out := make([]RequestSample, n)
	copy(out, w[len(w)-n:])
	return out
}

// Stats aggregates the window per method and route, busiest first.
func (pm *PerformanceMonitor) Stats() []RouteStats {
	pm.mu.RLock()
	byRoute := make(map[string][]RequestSample)
	for _, s := range pm.window() {
		key := s.Method + " " + s.Route
		byRoute[key] = append(byRoute[key], s)
	}
	pm.mu.RUnlock()

	stats := make([]RouteStats, 0, len(byRoute))
	for route, samples := range byRoute {
		durations := make([]time.Duration, len(samples))
		var sum time.Duration
		errs := 0
		for i, s := range samples {
			durations[i] = s.Duration
			sum += s.Duration
			if s.Status >= http.StatusInternalServerError {
				errs++
			}
		}
		sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

		stats = append(stats, RouteStats{
			Route:    route,
			Requests: len(samples),
			Errors:   errs,
			AvgMS:    millis(sum / time.Duration(len(samples))),
			P50MS:    millis(percentile(durations, 0.50)),
			P95MS:    millis(percentile(durations, 0.95)),
			P99MS:    millis(percentile(durations, 0.99)),
			MinMS:    millis(durations[0]),
			MaxMS:    millis(durations[len(durations)-1]),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Requests != stats[j].Requests {
			return stats[i].Requests > stats[j].Requests
		}
		return stats[i].Route < stats[j].Route
	})
	return stats
}

// Middleware samples every request it wraps. It must run inside a chi
// router so the matched route pattern is available.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		sample := RequestSample{
			Method:   r.Method,
			Route:    RoutePattern(r),
			Status:   status,
			Duration: time.Since(start),
			At:       start,
		}
		pm.Record(sample)

		if pm.slow > 0 && sample.Duration > pm.slow {
			logging.Ctx(r.Context()).Warn().
				Str("method", sample.Method).
				Str("route", sample.Route).
				Dur("duration", sample.Duration).
				Dur("threshold", pm.slow).
				Msg("Slow request detected")
		}
	})
}

// RoutePattern returns the chi route pattern matched by r, or "unmatched".
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// percentile picks the nearest-rank value from sorted durations.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

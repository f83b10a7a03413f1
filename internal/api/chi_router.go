// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/waypoint/internal/middleware"
)

// Router binds handlers and middleware to routes.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware uses the defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics)
		r.Use(router.handler.perf.Middleware)
		r.Use(middleware.Compression)

		r.Get("/health", router.handler.Health)

		r.Get("/categories", router.handler.Categories)
		r.Get("/cities", router.handler.Cities)
		r.Get("/cities/{city}/ranking", router.handler.CityRanking)

		r.Get("/users", router.handler.Users)
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/preferences", router.handler.UserPreferences)
			r.Get("/transitions", router.handler.UserTransitions)
			r.Get("/history", router.handler.UserHistory)
		})

		r.Get("/recommendations", router.handler.Recommendations)

		r.Route("/admin", func(r chi.Router) {
			r.Use(router.middleware.AdminAuth())
			r.Post("/reload", router.handler.ReloadDataset)
			r.Get("/performance", router.handler.Performance)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

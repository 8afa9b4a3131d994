// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/skyroute/internal/middleware"
	"github.com/tomtom215/skyroute/internal/models"
)

// handlerTimeout bounds every API request's context.
const handlerTimeout = 10 * time.Second

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config uses the defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.AccessLog)
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chimiddleware.Compress(5, "application/json"))
		r.Use(chimiddleware.Timeout(handlerTimeout))

		r.Get("/", router.handler.Root)

		r.Route("/v1", func(r chi.Router) {
			r.Route("/health", func(r chi.Router) {
				r.Get("/live", router.handler.HealthLive)
				r.Get("/ready", router.handler.HealthReady)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/stats", router.handler.AnalyticsStats)
				r.Get("/busiest-airports", router.handler.AnalyticsBusiestAirports)
				r.Get("/top-airlines", router.handler.AnalyticsTopAirlines)
				r.Get("/popular-routes", router.handler.AnalyticsPopularRoutes)
				r.Get("/airports-by-country", router.handler.AnalyticsAirportsByCountry)
			})

			r.Route("/search", func(r chi.Router) {
				r.Get("/airports", router.handler.SearchAirports)
				r.Get("/routes/{airportID}", router.handler.SearchRoutesForAirport)
				r.Get("/suggest", router.handler.SearchSuggest)
			})

			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/similar-routes", router.handler.SimilarRoutes)
				r.Get("/direct-routes", router.handler.DirectRoutes)
			})

			r.Route("/admin/ingest", func(r chi.Router) {
				r.Post("/", router.handler.AdminStartIngest)
				r.Get("/status", router.handler.AdminIngestStatus)
			})
		})
	})

	return r
}

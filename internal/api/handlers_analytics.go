// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/skyroute/internal/validation"
)

// AnalyticsStats returns airport, airline, route and country totals.
func (h *Handler) AnalyticsStats(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsStats", nil,
		func(ctx context.Context) (interface{}, error) {
			return h.db.Stats(ctx)
		})
}

// AnalyticsBusiestAirports ranks airports by inbound route count.
func (h *Handler) AnalyticsBusiestAirports(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseAnalytics(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsBusiestAirports", req,
		func(ctx context.Context) (interface{}, error) {
			return h.db.BusiestAirports(ctx, req.Limit)
		})
}

// AnalyticsTopAirlines ranks airlines by route count.
func (h *Handler) AnalyticsTopAirlines(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseAnalytics(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsTopAirlines", req,
		func(ctx context.Context) (interface{}, error) {
			return h.db.TopAirlines(ctx, req.Limit)
		})
}

// AnalyticsPopularRoutes ranks airport pairs by the number of airlines flying them.
func (h *Handler) AnalyticsPopularRoutes(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseAnalytics(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsPopularRoutes", req,
		func(ctx context.Context) (interface{}, error) {
			return h.db.PopularRoutes(ctx, req.Limit)
		})
}

// AnalyticsAirportsByCountry counts airports per country.
func (h *Handler) AnalyticsAirportsByCountry(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseCountry(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, "AnalyticsAirportsByCountry", req,
		func(ctx context.Context) (interface{}, error) {
			return h.db.AirportsByCountry(ctx, req.Limit)
		})
}

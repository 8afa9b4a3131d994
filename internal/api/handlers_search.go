// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/skyroute/internal/models"
	"github.com/tomtom215/skyroute/internal/validation"
)

// SearchAirports matches q against airport name, city, IATA code and country.
func (h *Handler) SearchAirports(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseAirportSearch(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	start := time.Now()
	airports, err := h.db.SearchAirports(r.Context(), req.Query, req.Limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabase, "Failed to search airports", err)
		return
	}
	if airports == nil {
		airports = []models.Airport{}
	}

	respondSuccess(w, http.StatusOK, airports, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       countOf(len(airports)),
	})
}

// SearchRoutesForAirport lists routes departing from or arriving at one airport.
func (h *Handler) SearchRoutesForAirport(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseAirportRoutes(chi.URLParam(r, "airportID"), r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	start := time.Now()
	routes, err := h.db.RoutesForAirport(r.Context(), req.AirportID, req.Limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabase, "Failed to load routes", err)
		return
	}
	if routes == nil {
		routes = []models.Route{}
	}

	respondSuccess(w, http.StatusOK, routes, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       countOf(len(routes)),
	})
}

// SearchSuggest serves airport autocomplete from the in-memory index.
func (h *Handler) SearchSuggest(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseSuggest(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}
	if h.suggester == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeInternal, "Suggestions not available", nil)
		return
	}

	start := time.Now()
	suggestions := h.suggester.Suggest(req.Query, req.Limit)

	respondSuccess(w, http.StatusOK, suggestions, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       countOf(len(suggestions)),
	})
}

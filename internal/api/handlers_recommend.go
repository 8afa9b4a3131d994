// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/skyroute/internal/models"
	"github.com/tomtom215/skyroute/internal/recommend"
	"github.com/tomtom215/skyroute/internal/validation"
)

// SimilarRoutes ranks stored routes by fingerprint similarity to
// source-destination. Recommendation diagnostics are echoed in the
// response metadata.
func (h *Handler) SimilarRoutes(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseSimilarRoutes(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	start := time.Now()
	rec, err := h.recommender.Recommend(r.Context(), req.Source, req.Destination, req.TopK)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, rec, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       countOf(len(rec.Results)),
		Diagnostics: rec.Diagnostics,
	})
}

// DirectRoutes lists stored routes that fly exactly source to destination.
func (h *Handler) DirectRoutes(w http.ResponseWriter, r *http.Request) {
	req, verr := validation.ParseDirectRoutes(r.URL.Query())
	if verr != nil {
		respondValidationError(w, verr)
		return
	}

	start := time.Now()
	routes, err := h.recommender.DirectRoutes(r.Context(), req.Source, req.Destination, req.Limit)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	if routes == nil {
		routes = []recommend.Route{}
	}

	respondSuccess(w, http.StatusOK, routes, models.Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       countOf(len(routes)),
	})
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/skyroute/internal/models"
	"github.com/tomtom215/skyroute/internal/recommend"
)

// respondRecommendError maps recommendation errors onto the envelope codes.
func respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No routes available to compare against", err)
	case errors.Is(err, recommend.ErrInvalidInput):
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, models.ErrCodeInternal, "Request timed out", err)
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabase, "Failed to compute recommendations", err)
	}
}

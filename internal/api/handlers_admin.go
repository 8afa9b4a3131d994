// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/skyroute/internal/ingest"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/models"
)

// IngestJob is the body of an accepted ingest request.
type IngestJob struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// AdminStartIngest launches a background dataset import and returns its
// job ID without waiting for it to finish.
func (h *Handler) AdminStartIngest(w http.ResponseWriter, r *http.Request) {
	if h.importer == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeInternal, "Ingest not available", nil)
		return
	}

	jobID, err := h.importer.Start(r.Context())
	if err != nil {
		if errors.Is(err, ingest.ErrAlreadyRunning) {
			respondError(w, r, http.StatusConflict, models.ErrCodeIngestBusy, "An ingest is already running", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to start ingest", err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("job_id", jobID).Msg("Ingest started via API")

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, http.StatusAccepted, IngestJob{
		JobID:  jobID,
		Status: ingest.StatusRunning,
	}, models.Metadata{})
}

// AdminIngestStatus reports the running or last completed import.
func (h *Handler) AdminIngestStatus(w http.ResponseWriter, r *http.Request) {
	if h.importer == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeInternal, "Ingest not available", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, http.StatusOK, h.importer.Status(r.Context()), models.Metadata{})
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/skyroute/internal/models"
)

// Root greets clients at /api/.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, models.RootInfo{
		Message: rootMessage,
		Version: Version,
	}, models.Metadata{})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Always returns 200 while the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until the database answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	health := models.HealthStatus{
		Status:            "ready",
		Version:           Version,
		DatabaseConnected: dbConnected,
		IngestRunning:     h.importer != nil && h.importer.IsRunning(),
		Uptime:            time.Since(h.startTime).Seconds(),
	}

	status := http.StatusOK
	if !dbConnected {
		health.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, status, health, models.Metadata{})
}

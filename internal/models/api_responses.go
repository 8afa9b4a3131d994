// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"route_text": "JFK-LAX", "similarity": 1}],
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "query_time_ms": 45
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "limit must be between 1 and 50"
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Query time tracking:
//   - Cached responses: QueryTimeMS is 0, Cached is true
//   - Fresh queries: QueryTimeMS shows actual execution time
//
// Diagnostics carries per-endpoint details such as the recommendation
// skip count. It is omitted when empty.
type Metadata struct {
	Timestamp   time.Time   `json:"timestamp"`
	QueryTimeMS int64       `json:"query_time_ms,omitempty"`
	Cached      bool        `json:"cached,omitempty"`
	Count       *int        `json:"count,omitempty"`
	Diagnostics interface{} `json:"diagnostics,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: No data to answer the request
//   - DATABASE_ERROR: Query execution failure
//   - INGEST_RUNNING: An ingest is already in progress
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes carried in APIError.Code.
const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeDatabase    = "DATABASE_ERROR"
	ErrCodeIngestBusy  = "INGEST_RUNNING"
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal    = "INTERNAL_ERROR"
)

// RootInfo is returned by the API root.
type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	IngestRunning     bool    `json:"ingest_running"`
	Uptime            float64 `json:"uptime_seconds"`
}

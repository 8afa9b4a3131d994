// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/skyroute/internal/logging"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// Header names used for request tracing.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// RequestID generates a unique ID for each request and adds it to the
// response header and the request context. It also populates the logging
// package's request_id and correlation_id so logging.Ctx picks them up.
// A client-supplied X-Request-ID or X-Correlation-ID is kept after sanitising.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := traceHeader(r, HeaderRequestID)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		correlationID := traceHeader(r, HeaderCorrelationID)
		if correlationID == "" {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(HeaderRequestID, requestID)
		w.Header().Set(HeaderCorrelationID, correlationID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logging.ContextWithRequestID(ctx, requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func traceHeader(r *http.Request, name string) string {
	v := strings.TrimSpace(r.Header.Get(name))
	if v == "" {
		return ""
	}
	return logging.SanitizeParam(v)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package api serves the Skyroute HTTP API.

The router is built on go-chi/chi. Global middleware assigns request and
correlation IDs, resolves the client IP, recovers panics and answers CORS
preflights. Routes under /api additionally get Prometheus instrumentation,
access logging, per-IP rate limiting via go-chi/httprate, gzip compression
and a 10 second request deadline.

# Routes

	GET  /api/                                    root greeting and version
	GET  /api/v1/health/live                      liveness
	GET  /api/v1/health/ready                     readiness (database ping)
	GET  /api/v1/analytics/stats                  dataset totals
	GET  /api/v1/analytics/busiest-airports       ?limit=1..50
	GET  /api/v1/analytics/top-airlines           ?limit=1..50
	GET  /api/v1/analytics/popular-routes         ?limit=1..50
	GET  /api/v1/analytics/airports-by-country    ?limit=1..100
	GET  /api/v1/search/airports                  ?q=&limit=1..100
	GET  /api/v1/search/routes/{airportID}        ?limit=1..200
	GET  /api/v1/search/suggest                   ?q=&limit=1..25
	GET  /api/v1/recommendations/similar-routes   ?source=&destination=&top_k=1..50
	GET  /api/v1/recommendations/direct-routes    ?source=&destination=&limit=1..100
	POST /api/v1/admin/ingest                     start a background import
	GET  /api/v1/admin/ingest/status              import progress
	GET  /metrics                                 Prometheus exposition

# Responses

Every endpoint answers with models.APIResponse. Failures carry a machine
readable code: VALIDATION_ERROR (400), NOT_FOUND (404), INGEST_RUNNING
(409), RATE_LIMIT_EXCEEDED (429), DATABASE_ERROR or INTERNAL_ERROR (5xx).
Error details are logged with the request ID and never sent to clients.

Analytics endpoints run through AnalyticsQueryExecutor, which serves
repeated queries from the shared cache until the next dataset.ingested
event clears it.
*/
package api

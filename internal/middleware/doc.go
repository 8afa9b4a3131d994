// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package middleware provides HTTP middleware used by the API router.

All middleware use the func(http.Handler) http.Handler shape so they can be
installed with chi's Router.Use.

Key Components:

  - RequestID: assigns X-Request-ID and X-Correlation-ID and stores both in
    the logging context so logging.Ctx(r.Context()) tags every line
  - PrometheusMetrics: request count, duration histogram and in-flight gauge,
    labeled by chi route pattern to keep cardinality bounded
  - AccessLog: one structured zerolog line per request

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)          // IDs first so later layers can log them
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)

Client-supplied trace IDs are kept but stripped of control characters and
truncated before they reach logs or response headers.
*/
package middleware

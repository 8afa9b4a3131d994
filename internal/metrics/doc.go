// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - DuckDB query performance
  - Recommendation latency, skipped fingerprints and space drift
  - Dataset ingest runs
  - Autocomplete index rebuilds
  - Circuit breaker state transitions
  - Cache hit/miss rates
  - Dataset event bus traffic

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8001/metrics

All metric names carry the skyroute_ prefix. Collectors are registered with
the default registry through promauto when the package is loaded.

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "routes", time.Since(start), err)

	metrics.RecordRecommendSkipped(diag.Skipped)
*/
package metrics

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package database provides DuckDB storage and analytics for the OpenFlights
// dataset.
//
// # Overview
//
// The package is the data layer between the API and DuckDB. It owns the
// schema, the batched dataset reload, the route corpus read used by the
// recommender, and the aggregation and search queries behind the analytics
// endpoints.
//
// # Architecture
//
//   - database.go: Connection lifecycle (open, initialize, ping, close)
//   - database_schema.go: Table and index creation
//   - database_connection.go: Connection pool settings and error classification
//   - database_utils.go: Context defaults, query metrics, checkpointing
//   - crud_routes.go: Dataset replacement and route reads
//   - analytics_traffic.go: Stats, busiest airports, top airlines, popular routes
//   - search_airports.go: Airport search and the suggestion catalog
//
// # Recommender Storage
//
// *DB satisfies recommend.RouteStore:
//
//	svc := recommend.NewService(db)
//
// AllRouteFingerprints returns rows ordered by route id so that ties in
// similarity keep ingest order.
//
// # Thread Safety
//
// All methods are safe for concurrent use. database/sql pools connections and
// DuckDB serializes conflicting writes.
//
// # Example
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	stats, err := db.Stats(ctx)
package database

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
database_schema.go - Database Schema Management

This file manages the DuckDB schema for the OpenFlights dataset.

Tables:
  - airports: One row per OpenFlights airport (first 8 columns of airports.dat)
  - airlines: One row per OpenFlights airline
  - routes: One row per route record, including duplicates across airlines,
    with the encoded route fingerprint in a BLOB column

Ids come from the dataset for airports and airlines. The dataset does not
guarantee uniqueness there, so only routes carry a primary key (ingest order).

Index Strategy:
Indexes cover the lookups the API performs:
  - routes(source, dest) for direct route lookups
  - routes(source_id), routes(dest_id) for per-airport routes and traffic
  - routes(airline_id) for airline traffic
  - airports(id), airlines(id) for joins
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range db.getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// getTableCreationQueries returns the table creation SQL statements
func (db *DB) getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS airports (
			id BIGINT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			iata TEXT NOT NULL DEFAULT '',
			icao TEXT NOT NULL DEFAULT '',
			latitude DOUBLE,
			longitude DOUBLE
		);`,

		`CREATE TABLE IF NOT EXISTS airlines (
			id BIGINT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			alias TEXT NOT NULL DEFAULT '',
			iata TEXT NOT NULL DEFAULT '',
			icao TEXT NOT NULL DEFAULT '',
			callsign TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			active BOOLEAN NOT NULL DEFAULT false
		);`,

		`CREATE TABLE IF NOT EXISTS routes (
			id BIGINT PRIMARY KEY,
			airline TEXT NOT NULL DEFAULT '',
			airline_id BIGINT,
			source TEXT NOT NULL,
			source_id BIGINT NOT NULL,
			dest TEXT NOT NULL,
			dest_id BIGINT NOT NULL,
			codeshare BOOLEAN NOT NULL DEFAULT false,
			stops INTEGER NOT NULL DEFAULT 0,
			equipment TEXT NOT NULL DEFAULT '',
			route_text TEXT NOT NULL,
			fingerprint BLOB
		);`,
	}
}

// createIndexes creates database indexes for query optimization
// Skips index creation if cfg.SkipIndexes is true (for fast test setup).
func (db *DB) createIndexes() error {
	if db.cfg != nil && db.cfg.SkipIndexes {
		return nil
	}

	return db.doCreateIndexes()
}

// CreateIndexes creates all database indexes.
// This is exposed for tests that specifically need indexes.
func (db *DB) CreateIndexes() error {
	return db.doCreateIndexes()
}

// doCreateIndexes is the internal implementation that creates all indexes.
func (db *DB) doCreateIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range db.getIndexQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute index query: %s: %w", query, err)
		}
	}

	return nil
}

// getIndexQueries returns index creation SQL statements
func (db *DB) getIndexQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_routes_source_dest ON routes(source, dest);`,
		`CREATE INDEX IF NOT EXISTS idx_routes_source_id ON routes(source_id);`,
		`CREATE INDEX IF NOT EXISTS idx_routes_dest_id ON routes(dest_id);`,
		`CREATE INDEX IF NOT EXISTS idx_routes_airline_id ON routes(airline_id);`,
		`CREATE INDEX IF NOT EXISTS idx_airports_id ON airports(id);`,
		`CREATE INDEX IF NOT EXISTS idx_airports_country ON airports(country);`,
		`CREATE INDEX IF NOT EXISTS idx_airlines_id ON airlines(id);`,
	}
}

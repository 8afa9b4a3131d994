// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
database_utils.go - Database Utility Functions

Context Management:
  - ensureContext(): Creates a context with 30-second timeout if none provided
  - Ensures all database operations have a timeout to prevent hanging queries

Query Helpers:
  - observe(): Records query duration and errors for Prometheus
  - normalizeLimit(): Rejects non-positive LIMIT values before they reach SQL

Maintenance:
  - Checkpoint(): Forces a WAL checkpoint
  - GetDatabasePath(): Returns the database file path
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/skyroute/internal/metrics"
)

// ensureContext creates a context with 30-second timeout if none provided
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}

	return ctx, func() {}
}

// observe records a query's duration against its operation and table labels.
// Call as: defer observe("select", "routes", time.Now(), &err)
func observe(operation, table string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
}

// normalizeLimit validates a LIMIT argument
func normalizeLimit(limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	return limit, nil
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, "CHECKPOINT")
	if err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// GetDatabasePath returns the path to the database file
func (db *DB) GetDatabasePath() string {
	return db.cfg.Path
}

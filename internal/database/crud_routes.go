// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/models"
	"github.com/tomtom215/skyroute/internal/recommend"
)

// DefaultBatchSize is the number of rows per insert transaction when the
// caller passes a non-positive batch size.
const DefaultBatchSize = 1000

const (
	insertAirportQuery = `INSERT INTO airports (
		id, name, city, country, iata, icao, latitude, longitude
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	insertAirlineQuery = `INSERT INTO airlines (
		id, name, alias, iata, icao, callsign, country, active
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	insertRouteQuery = `INSERT INTO routes (
		id, airline, airline_id, source, source_id, dest, dest_id,
		codeshare, stops, equipment, route_text, fingerprint
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	routeColumns = `id, airline, airline_id, source, source_id, dest, dest_id,
		codeshare, stops, equipment, route_text`
)

// ClearDataset deletes every airport, airline and route in one transaction.
func (db *DB) ClearDataset(ctx context.Context) (err error) {
	defer observe("delete", "dataset", time.Now(), &err)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
			}
		}
	}()

	for _, table := range []string{"routes", "airlines", "airports"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ReplaceDataset clears all three tables and inserts the given rows in
// transactions of batchSize rows. Routes must already carry their ids,
// route texts and encoded fingerprints.
//
// A failure part-way leaves the committed batches in place; callers re-run
// the ingest to recover.
func (db *DB) ReplaceDataset(ctx context.Context, airports []models.Airport, airlines []models.Airline, routes []models.Route, batchSize int) (err error) {
	defer observe("replace", "dataset", time.Now(), &err)

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if err = db.ClearDataset(ctx); err != nil {
		return err
	}

	err = db.insertBatched(ctx, "airports", insertAirportQuery, len(airports), batchSize, func(i int) []any {
		a := airports[i]
		return []any{a.ID, a.Name, a.City, a.Country, a.IATA, a.ICAO, nullable(a.Latitude), nullable(a.Longitude)}
	})
	if err != nil {
		return err
	}

	err = db.insertBatched(ctx, "airlines", insertAirlineQuery, len(airlines), batchSize, func(i int) []any {
		a := airlines[i]
		return []any{a.ID, a.Name, a.Alias, a.IATA, a.ICAO, a.Callsign, a.Country, a.Active}
	})
	if err != nil {
		return err
	}

	err = db.insertBatched(ctx, "routes", insertRouteQuery, len(routes), batchSize, func(i int) []any {
		r := routes[i]
		return []any{r.ID, r.Airline, nullable(r.AirlineID), r.Source, r.SourceID, r.Dest, r.DestID,
			r.Codeshare, r.Stops, r.Equipment, r.RouteText, r.Fingerprint}
	})
	if err != nil {
		return err
	}

	if cpErr := db.Checkpoint(ctx); cpErr != nil {
		logging.Warn().Err(cpErr).Msg("Failed to checkpoint after dataset replace")
	}

	logging.Info().
		Int("airports", len(airports)).
		Int("airlines", len(airlines)).
		Int("routes", len(routes)).
		Int("batch_size", batchSize).
		Msg("Dataset replaced")

	return nil
}

// insertBatched runs query for rows [0, n) in transactions of batchSize rows.
func (db *DB) insertBatched(ctx context.Context, table, query string, n, batchSize int, args func(i int) []any) error {
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)
		if err := db.insertBatch(ctx, query, start, end, args); err != nil {
			return fmt.Errorf("insert %s rows %d-%d: %w", table, start, end, err)
		}
	}
	return nil
}

func (db *DB) insertBatch(ctx context.Context, query string, start, end int, args func(i int) []any) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := start; i < end; i++ {
		if _, err = stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AllRouteFingerprints returns every route's text, codes and encoded
// fingerprint ordered by route id.
func (db *DB) AllRouteFingerprints(ctx context.Context) (routes []recommend.StoredRoute, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "routes", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT route_text, source, dest, airline, fingerprint
		FROM routes
		ORDER BY id`)
	if err != nil {
		return nil, wrapQueryError("query route fingerprints", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var r recommend.StoredRoute
		if err = rows.Scan(&r.RouteText, &r.Source, &r.Dest, &r.Airline, &r.Fingerprint); err != nil {
			return nil, fmt.Errorf("scan route fingerprint: %w", err)
		}
		routes = append(routes, r)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate route fingerprints", err)
	}
	return routes, nil
}

// DirectRoutes returns up to limit routes flying source to dest, ordered by id.
// Codes are matched exactly; callers normalize them.
func (db *DB) DirectRoutes(ctx context.Context, source, dest string, limit int) (routes []recommend.StoredRoute, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "routes", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT route_text, source, dest, airline
		FROM routes
		WHERE source = ? AND dest = ?
		ORDER BY id
		LIMIT ?`, source, dest, limit)
	if err != nil {
		return nil, wrapQueryError("query direct routes", err)
	}
	defer closeWithLog(rows, "rows")

	routes = []recommend.StoredRoute{}
	for rows.Next() {
		var r recommend.StoredRoute
		if err = rows.Scan(&r.RouteText, &r.Source, &r.Dest, &r.Airline); err != nil {
			return nil, fmt.Errorf("scan direct route: %w", err)
		}
		routes = append(routes, r)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate direct routes", err)
	}
	return routes, nil
}

// RoutesForAirport returns up to limit routes departing from or arriving at
// the airport, ordered by route id.
func (db *DB) RoutesForAirport(ctx context.Context, airportID int64, limit int) (routes []models.Route, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "routes", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+routeColumns+`
		FROM routes
		WHERE source_id = ? OR dest_id = ?
		ORDER BY id
		LIMIT ?`, airportID, airportID, limit)
	if err != nil {
		return nil, wrapQueryError("query airport routes", err)
	}
	defer closeWithLog(rows, "rows")

	routes = []models.Route{}
	for rows.Next() {
		r, scanErr := scanRoute(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		routes = append(routes, r)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate airport routes", err)
	}
	return routes, nil
}

// nullable unwraps an optional value so the driver binds a plain value or NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// scanRoute scans one row selected with routeColumns.
func scanRoute(rows *sql.Rows) (models.Route, error) {
	var r models.Route
	var airlineID sql.NullInt64
	if err := rows.Scan(&r.ID, &r.Airline, &airlineID, &r.Source, &r.SourceID, &r.Dest, &r.DestID,
		&r.Codeshare, &r.Stops, &r.Equipment, &r.RouteText); err != nil {
		return r, fmt.Errorf("scan route: %w", err)
	}
	if airlineID.Valid {
		id := airlineID.Int64
		r.AirlineID = &id
	}
	return r, nil
}

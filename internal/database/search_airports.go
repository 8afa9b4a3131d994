// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/skyroute/internal/models"
)

const airportColumns = `id, name, city, country, iata, icao, latitude, longitude`

// SearchAirports returns airports whose name, city, IATA code or country
// contains q, case-insensitively, ordered by id. The match is literal, so
// LIKE wildcards in q have no special meaning.
func (db *DB) SearchAirports(ctx context.Context, q string, limit int) (result []models.Airport, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []models.Airport{}, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("search", "airports", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT `+airportColumns+`
		FROM airports
		WHERE contains(lower(name), $1)
			OR contains(lower(city), $1)
			OR contains(lower(iata), $1)
			OR contains(lower(country), $1)
		ORDER BY id
		LIMIT $2`, q, limit)
	if err != nil {
		return nil, wrapQueryError("search airports", err)
	}
	defer closeWithLog(rows, "rows")

	return scanAirports(rows)
}

// AirportCatalog returns every airport ordered by id. The suggestion index
// is built from it after each ingest.
func (db *DB) AirportCatalog(ctx context.Context) (result []models.Airport, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "airports", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `SELECT `+airportColumns+` FROM airports ORDER BY id`)
	if err != nil {
		return nil, wrapQueryError("query airport catalog", err)
	}
	defer closeWithLog(rows, "rows")

	return scanAirports(rows)
}

func scanAirports(rows *sql.Rows) ([]models.Airport, error) {
	airports := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		var lat, lon sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.IATA, &a.ICAO, &lat, &lon); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		a.Latitude = floatPtr(lat)
		a.Longitude = floatPtr(lon)
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate airports", err)
	}
	return airports, nil
}

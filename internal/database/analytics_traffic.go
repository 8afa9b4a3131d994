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

	"github.com/tomtom215/skyroute/internal/models"
)

// Stats returns airport, airline and route counts plus the number of distinct
// non-empty airport countries.
func (db *DB) Stats(ctx context.Context) (stats *models.DatasetStats, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "dataset", time.Now(), &err)

	stats = &models.DatasetStats{}
	err = db.conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM airports),
			(SELECT COUNT(*) FROM airlines),
			(SELECT COUNT(*) FROM routes),
			(SELECT COUNT(DISTINCT country) FROM airports WHERE country <> '')
	`).Scan(&stats.Airports, &stats.Airlines, &stats.Routes, &stats.Countries)
	if err != nil {
		return nil, wrapQueryError("query dataset stats", err)
	}
	return stats, nil
}

// BusiestAirports ranks airports by the number of routes arriving there.
// Routes whose dest_id has no matching airport are not reported.
func (db *DB) BusiestAirports(ctx context.Context, limit int) (result []models.AirportTraffic, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "routes", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		WITH traffic AS (
			SELECT dest_id, COUNT(*) AS route_count
			FROM routes
			GROUP BY dest_id
		)
		SELECT a.id, a.name, a.city, a.country, a.iata, a.latitude, a.longitude, t.route_count
		FROM traffic t
		JOIN airports a ON a.id = t.dest_id
		ORDER BY t.route_count DESC, a.id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapQueryError("query busiest airports", err)
	}
	defer closeWithLog(rows, "rows")

	result = []models.AirportTraffic{}
	for rows.Next() {
		var t models.AirportTraffic
		var lat, lon sql.NullFloat64
		if err = rows.Scan(&t.AirportID, &t.Name, &t.City, &t.Country, &t.IATA, &lat, &lon, &t.RouteCount); err != nil {
			return nil, fmt.Errorf("scan airport traffic: %w", err)
		}
		t.Latitude = floatPtr(lat)
		t.Longitude = floatPtr(lon)
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate busiest airports", err)
	}
	return result, nil
}

// TopAirlines ranks airlines by route count. Routes without an airline id
// are excluded.
func (db *DB) TopAirlines(ctx context.Context, limit int) (result []models.AirlineTraffic, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "routes", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		WITH traffic AS (
			SELECT airline_id, COUNT(*) AS route_count
			FROM routes
			WHERE airline_id IS NOT NULL
			GROUP BY airline_id
		)
		SELECT al.id, al.name, al.iata, al.country, al.active, t.route_count
		FROM traffic t
		JOIN airlines al ON al.id = t.airline_id
		ORDER BY t.route_count DESC, al.id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapQueryError("query top airlines", err)
	}
	defer closeWithLog(rows, "rows")

	result = []models.AirlineTraffic{}
	for rows.Next() {
		var t models.AirlineTraffic
		if err = rows.Scan(&t.AirlineID, &t.Name, &t.IATA, &t.Country, &t.Active, &t.RouteCount); err != nil {
			return nil, fmt.Errorf("scan airline traffic: %w", err)
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate top airlines", err)
	}
	return result, nil
}

// PopularRoutes ranks airport pairs by the number of route records between
// them, then by distinct airline count.
func (db *DB) PopularRoutes(ctx context.Context, limit int) (result []models.PopularRoute, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "routes", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		WITH pairs AS (
			SELECT source_id, dest_id,
				MIN(source) AS source,
				MIN(dest) AS dest,
				COUNT(DISTINCT airline) AS airline_count,
				COUNT(*) AS route_count
			FROM routes
			GROUP BY source_id, dest_id
		)
		SELECT p.source_id, p.dest_id, p.source, p.dest,
			COALESCE((SELECT MIN(name) FROM airports WHERE id = p.source_id), ''),
			COALESCE((SELECT MIN(name) FROM airports WHERE id = p.dest_id), ''),
			p.airline_count, p.route_count
		FROM pairs p
		ORDER BY p.route_count DESC, p.airline_count DESC, p.source_id ASC, p.dest_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapQueryError("query popular routes", err)
	}
	defer closeWithLog(rows, "rows")

	result = []models.PopularRoute{}
	for rows.Next() {
		var p models.PopularRoute
		if err = rows.Scan(&p.SourceID, &p.DestID, &p.Source, &p.Dest, &p.SourceName, &p.DestName,
			&p.AirlineCount, &p.RouteCount); err != nil {
			return nil, fmt.Errorf("scan popular route: %w", err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate popular routes", err)
	}
	return result, nil
}

// AirportsByCountry counts airports per non-empty country, descending.
func (db *DB) AirportsByCountry(ctx context.Context, limit int) (result []models.CountryCount, err error) {
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer observe("select", "airports", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT country, COUNT(*) AS airport_count
		FROM airports
		WHERE country <> ''
		GROUP BY country
		ORDER BY airport_count DESC, country ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapQueryError("query airports by country", err)
	}
	defer closeWithLog(rows, "rows")

	result = []models.CountryCount{}
	for rows.Next() {
		var c models.CountryCount
		if err = rows.Scan(&c.Country, &c.AirportCount); err != nil {
			return nil, fmt.Errorf("scan country count: %w", err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapQueryError("iterate airports by country", err)
	}
	return result, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

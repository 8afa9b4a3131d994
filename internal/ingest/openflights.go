// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomtom215/skyroute/internal/models"
)

// nullField is the OpenFlights marker for a missing value.
const nullField = `\N`

// Minimum column counts per file.
const (
	airportColumns = 8 // id..longitude; altitude and timezone columns are ignored
	airlineColumns = 8
	routeColumns   = 9
)

// newReader returns a CSV reader tolerant of the quirks in the OpenFlights
// exports: ragged rows and stray quotes inside fields.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// eachRecord calls fn for every CSV record in r.
func eachRecord(r io.Reader, fn func(rec []string)) error {
	cr := newReader(r)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(rec)
	}
}

// field returns the trimmed value of column i, with the null marker mapped
// to the empty string.
func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	v := strings.TrimSpace(rec[i])
	if v == nullField {
		return ""
	}
	return v
}

func parseID(rec []string, i int) (int64, bool) {
	v := field(rec, i)
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseCoord(rec []string, i int) *float64 {
	v := field(rec, i)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseAirports reads airports.dat. Records without a numeric id are dropped.
func ParseAirports(r io.Reader) ([]models.Airport, ParseStats, error) {
	var stats ParseStats
	airports := []models.Airport{}

	err := eachRecord(r, func(rec []string) {
		stats.Rows++
		if len(rec) < airportColumns {
			stats.Dropped++
			return
		}
		id, ok := parseID(rec, 0)
		if !ok {
			stats.Dropped++
			return
		}
		airports = append(airports, models.Airport{
			ID:        id,
			Name:      field(rec, 1),
			City:      field(rec, 2),
			Country:   field(rec, 3),
			IATA:      field(rec, 4),
			ICAO:      field(rec, 5),
			Latitude:  parseCoord(rec, 6),
			Longitude: parseCoord(rec, 7),
		})
	})
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", AirportsFile, err)
	}

	stats.Kept = len(airports)
	return airports, stats, nil
}

// ParseAirlines reads airlines.dat. An airline is active iff the last column
// is exactly "Y".
func ParseAirlines(r io.Reader) ([]models.Airline, ParseStats, error) {
	var stats ParseStats
	airlines := []models.Airline{}

	err := eachRecord(r, func(rec []string) {
		stats.Rows++
		if len(rec) < airlineColumns {
			stats.Dropped++
			return
		}
		id, ok := parseID(rec, 0)
		if !ok {
			stats.Dropped++
			return
		}
		airlines = append(airlines, models.Airline{
			ID:       id,
			Name:     field(rec, 1),
			Alias:    field(rec, 2),
			IATA:     field(rec, 3),
			ICAO:     field(rec, 4),
			Callsign: field(rec, 5),
			Country:  field(rec, 6),
			Active:   field(rec, 7) == "Y",
		})
	})
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", AirlinesFile, err)
	}

	stats.Kept = len(airlines)
	return airlines, stats, nil
}

// ParseRoutes reads routes.dat. Records whose source or destination airport
// id is null are dropped. Kept routes are numbered from 1 in file order and
// carry route_text "SRC-DST"; fingerprints are added later.
func ParseRoutes(r io.Reader) ([]models.Route, ParseStats, error) {
	var stats ParseStats
	routes := []models.Route{}

	err := eachRecord(r, func(rec []string) {
		stats.Rows++
		if len(rec) < routeColumns {
			stats.Dropped++
			return
		}
		sourceID, ok := parseID(rec, 3)
		if !ok {
			stats.Dropped++
			return
		}
		destID, ok := parseID(rec, 5)
		if !ok {
			stats.Dropped++
			return
		}

		route := models.Route{
			ID:        int64(len(routes) + 1),
			Airline:   field(rec, 0),
			Source:    field(rec, 2),
			SourceID:  sourceID,
			Dest:      field(rec, 4),
			DestID:    destID,
			Codeshare: field(rec, 6) == "Y",
			Equipment: field(rec, 8),
		}
		if airlineID, ok := parseID(rec, 1); ok {
			route.AirlineID = &airlineID
		}
		if stops, err := strconv.Atoi(field(rec, 7)); err == nil {
			route.Stops = stops
		}
		route.RouteText = route.Source + "-" + route.Dest

		routes = append(routes, route)
	})
	if err != nil {
		return nil, stats, fmt.Errorf("parse %s: %w", RoutesFile, err)
	}

	stats.Kept = len(routes)
	return routes, stats, nil
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package models

// Airport is a row of airports.dat.
type Airport struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	IATA      string   `json:"iata"`
	ICAO      string   `json:"icao"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Airline is a row of airlines.dat.
type Airline struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Alias    string `json:"alias"`
	IATA     string `json:"iata"`
	ICAO     string `json:"icao"`
	Callsign string `json:"callsign"`
	Country  string `json:"country"`
	Active   bool   `json:"active"`
}

// Route is a row of routes.dat plus the identifier and fingerprint computed
// at ingest. ID is the 1-based position among the kept rows.
type Route struct {
	ID          int64  `json:"id"`
	Airline     string `json:"airline"`
	AirlineID   *int64 `json:"airline_id"`
	Source      string `json:"source"`
	SourceID    int64  `json:"source_id"`
	Dest        string `json:"dest"`
	DestID      int64  `json:"dest_id"`
	Codeshare   bool   `json:"codeshare"`
	Stops       int    `json:"stops"`
	Equipment   string `json:"equipment"`
	RouteText   string `json:"route_text"`
	Fingerprint []byte `json:"-"`
}

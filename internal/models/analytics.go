// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package models

// DatasetStats summarizes the loaded dataset.
type DatasetStats struct {
	Airports  int64 `json:"airports"`
	Airlines  int64 `json:"airlines"`
	Routes    int64 `json:"routes"`
	Countries int64 `json:"countries"`
}

// AirportTraffic is an airport ranked by inbound route count.
type AirportTraffic struct {
	AirportID  int64    `json:"airport_id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	IATA       string   `json:"iata"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	RouteCount int64    `json:"route_count"`
}

// AirlineTraffic is an airline ranked by route count.
type AirlineTraffic struct {
	AirlineID  int64  `json:"airline_id"`
	Name       string `json:"name"`
	IATA       string `json:"iata"`
	Country    string `json:"country"`
	Active     bool   `json:"active"`
	RouteCount int64  `json:"route_count"`
}

// PopularRoute is an airport pair ranked by how many route records connect
// it.
type PopularRoute struct {
	SourceID     int64  `json:"source_id"`
	DestID       int64  `json:"dest_id"`
	Source       string `json:"source"`
	Dest         string `json:"dest"`
	SourceName   string `json:"source_name"`
	DestName     string `json:"dest_name"`
	AirlineCount int64  `json:"airline_count"`
	RouteCount   int64  `json:"route_count"`
}

// CountryCount is the number of airports in a country.
type CountryCount struct {
	Country      string `json:"country"`
	AirportCount int64  `json:"airport_count"`
}

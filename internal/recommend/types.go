// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package recommend

import (
	"context"
	"strings"

	"github.com/tomtom215/skyroute/internal/fingerprint"
)

// StoredRoute is a route row as read from storage.
type StoredRoute struct {
	RouteText   string
	Source      string
	Dest        string
	Airline     string
	Fingerprint []byte
}

// RouteStore is the storage collaborator. It is implemented by the database
// package.
type RouteStore interface {
	// AllRouteFingerprints returns every route in a stable order.
	AllRouteFingerprints(ctx context.Context) ([]StoredRoute, error)

	// DirectRoutes returns routes whose source and destination equal the
	// given (already normalized) codes.
	DirectRoutes(ctx context.Context, source, dest string, limit int) ([]StoredRoute, error)
}

// SnapshotLoader returns the space persisted at ingest, or nil when none was
// saved.
type SnapshotLoader interface {
	LoadSpace(ctx context.Context) (*fingerprint.Snapshot, error)
}

// Route is the public view of a route.
type Route struct {
	RouteText string `json:"route_text"`
	Source    string `json:"source"`
	Dest      string `json:"dest"`
	Airline   string `json:"airline"`
}

// Result is a route with its similarity to the query.
type Result struct {
	Route
	Similarity float64 `json:"similarity"`
}

// Diagnostics describes how a recommendation was computed.
type Diagnostics struct {
	// CorpusSize is the number of stored routes read.
	CorpusSize int `json:"corpus_size"`

	// Skipped counts rows whose fingerprint could not be decoded.
	Skipped int `json:"skipped"`

	// DimensionMismatch counts decoded rows whose width differs from the
	// query space. They score 0.
	DimensionMismatch int `json:"dimension_mismatch"`

	// SpaceSource is the space that encoded the query.
	SpaceSource SpaceSource `json:"space_source"`

	// SpaceDim is the column count of that space.
	SpaceDim int `json:"space_dim"`

	// Drift is set when the live corpus or refit space differs from the
	// persisted snapshot.
	Drift bool `json:"drift"`
}

// Recommendation is the result of Service.Recommend.
type Recommendation struct {
	Query       string      `json:"query"`
	Results     []Result    `json:"results"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// NormalizeCode trims and uppercases an airport code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// RouteText builds the identifier for a source and destination pair.
func RouteText(source, dest string) string {
	return source + "-" + dest
}

func toRoute(r StoredRoute) Route {
	return Route{
		RouteText: r.RouteText,
		Source:    r.Source,
		Dest:      r.Dest,
		Airline:   r.Airline,
	}
}

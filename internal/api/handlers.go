// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"context"
	"time"

	"github.com/tomtom215/skyroute/internal/cache"
	"github.com/tomtom215/skyroute/internal/ingest"
	"github.com/tomtom215/skyroute/internal/models"
	"github.com/tomtom215/skyroute/internal/recommend"
	"github.com/tomtom215/skyroute/internal/suggest"
)

// Version is reported by the API root and the health endpoints.
const Version = "1.0.0"

// rootMessage is the greeting served at /api/.
const rootMessage = "Skyroute Flight Analytics API - Ready"

// Store is the subset of the database the handlers read from.
type Store interface {
	Ping(ctx context.Context) error
	Stats(ctx context.Context) (*models.DatasetStats, error)
	BusiestAirports(ctx context.Context, limit int) ([]models.AirportTraffic, error)
	TopAirlines(ctx context.Context, limit int) ([]models.AirlineTraffic, error)
	PopularRoutes(ctx context.Context, limit int) ([]models.PopularRoute, error)
	AirportsByCountry(ctx context.Context, limit int) ([]models.CountryCount, error)
	SearchAirports(ctx context.Context, q string, limit int) ([]models.Airport, error)
	RoutesForAirport(ctx context.Context, airportID int64, limit int) ([]models.Route, error)
}

// Recommender answers similarity and direct-route queries.
type Recommender interface {
	Recommend(ctx context.Context, source, dest string, topK int) (*recommend.Recommendation, error)
	DirectRoutes(ctx context.Context, source, dest string, limit int) ([]recommend.Route, error)
}

// Suggester serves airport autocomplete.
type Suggester interface {
	Suggest(q string, limit int) []suggest.Suggestion
}

// IngestRunner starts background imports and reports their progress.
type IngestRunner interface {
	Start(ctx context.Context) (string, error)
	Status(ctx context.Context) *ingest.ProgressSummary
	IsRunning() bool
}

// Handler manages HTTP request handlers and their dependencies
type Handler struct {
	db          Store
	recommender Recommender
	suggester   Suggester
	importer    IngestRunner
	cache       *cache.Cache
	startTime   time.Time
}

// NewHandler creates a new Handler instance. A nil cache disables
// analytics caching.
func NewHandler(db Store, recommender Recommender, suggester Suggester, importer IngestRunner, c *cache.Cache) *Handler {
	return &Handler{
		db:          db,
		recommender: recommender,
		suggester:   suggester,
		importer:    importer,
		cache:       c,
		startTime:   time.Now(),
	}
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skyroute/internal/cache"
	"github.com/tomtom215/skyroute/internal/ingest"
	"github.com/tomtom215/skyroute/internal/models"
	"github.com/tomtom215/skyroute/internal/recommend"
	"github.com/tomtom215/skyroute/internal/suggest"
)

// fakeStore records calls and serves canned analytics rows.
type fakeStore struct {
	mu sync.Mutex

	pingErr  error
	queryErr error

	calls         map[string]int
	lastLimit     int
	lastQuery     string
	lastAirportID int64

	airports []models.Airport
	routes   []models.Route
}

func newFakeStore() *fakeStore {
	lat, lon := 40.6398, -73.7789
	return &fakeStore{
		calls: make(map[string]int),
		airports: []models.Airport{
			{ID: 3797, Name: "John F Kennedy International Airport", City: "New York", Country: "United States", IATA: "JFK", ICAO: "KJFK", Latitude: &lat, Longitude: &lon},
		},
		routes: []models.Route{
			{ID: 1, Airline: "AA", Source: "JFK", SourceID: 3797, Dest: "LAX", DestID: 3484, RouteText: "JFK-LAX"},
		},
	}
}

func (f *fakeStore) record(name string, limit int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	f.lastLimit = limit
	return f.queryErr
}

func (f *fakeStore) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) Stats(context.Context) (*models.DatasetStats, error) {
	if err := f.record("Stats", 0); err != nil {
		return nil, err
	}
	return &models.DatasetStats{Airports: 3, Airlines: 2, Routes: 3, Countries: 1}, nil
}

func (f *fakeStore) BusiestAirports(_ context.Context, limit int) ([]models.AirportTraffic, error) {
	if err := f.record("BusiestAirports", limit); err != nil {
		return nil, err
	}
	return []models.AirportTraffic{
		{AirportID: 3484, Name: "Los Angeles International Airport", IATA: "LAX", RouteCount: 2},
		{AirportID: 3797, Name: "John F Kennedy International Airport", IATA: "JFK", RouteCount: 1},
	}, nil
}

func (f *fakeStore) TopAirlines(_ context.Context, limit int) ([]models.AirlineTraffic, error) {
	if err := f.record("TopAirlines", limit); err != nil {
		return nil, err
	}
	return []models.AirlineTraffic{{AirlineID: 24, Name: "American Airlines", IATA: "AA", Active: true, RouteCount: 3}}, nil
}

func (f *fakeStore) PopularRoutes(_ context.Context, limit int) ([]models.PopularRoute, error) {
	if err := f.record("PopularRoutes", limit); err != nil {
		return nil, err
	}
	return []models.PopularRoute{{SourceID: 3797, DestID: 3484, Source: "JFK", Dest: "LAX", AirlineCount: 1, RouteCount: 1}}, nil
}

func (f *fakeStore) AirportsByCountry(_ context.Context, limit int) ([]models.CountryCount, error) {
	if err := f.record("AirportsByCountry", limit); err != nil {
		return nil, err
	}
	return []models.CountryCount{{Country: "United States", AirportCount: 3}}, nil
}

func (f *fakeStore) SearchAirports(_ context.Context, q string, limit int) ([]models.Airport, error) {
	if err := f.record("SearchAirports", limit); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastQuery = q
	f.mu.Unlock()
	return f.airports, nil
}

func (f *fakeStore) RoutesForAirport(_ context.Context, airportID int64, limit int) ([]models.Route, error) {
	if err := f.record("RoutesForAirport", limit); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastAirportID = airportID
	f.mu.Unlock()
	return f.routes, nil
}

// fakeRecommender returns a fixed recommendation or err.
type fakeRecommender struct {
	err        error
	lastSource string
	lastDest   string
	lastTopK   int
}

func (f *fakeRecommender) Recommend(_ context.Context, source, dest string, topK int) (*recommend.Recommendation, error) {
	f.lastSource, f.lastDest, f.lastTopK = source, dest, topK
	if f.err != nil {
		return nil, f.err
	}
	return &recommend.Recommendation{
		Query: strings.ToUpper(source) + "-" + strings.ToUpper(dest),
		Results: []recommend.Result{
			{Route: recommend.Route{RouteText: "JFK-LAX", Source: "JFK", Dest: "LAX", Airline: "AA"}, Similarity: 1},
			{Route: recommend.Route{RouteText: "JFK-SFO", Source: "JFK", Dest: "SFO", Airline: "UA"}, Similarity: 0.5},
		},
		Diagnostics: recommend.Diagnostics{CorpusSize: 3, Skipped: 1, SpaceSource: recommend.SpaceRefit, SpaceDim: 9},
	}, nil
}

func (f *fakeRecommender) DirectRoutes(_ context.Context, source, dest string, limit int) ([]recommend.Route, error) {
	f.lastSource, f.lastDest = source, dest
	if f.err != nil {
		return nil, f.err
	}
	return []recommend.Route{{RouteText: "JFK-LAX", Source: "JFK", Dest: "LAX", Airline: "AA"}}, nil
}

type fakeSuggester struct{}

func (fakeSuggester) Suggest(q string, limit int) []suggest.Suggestion {
	out := []suggest.Suggestion{}
	if strings.EqualFold(q, "jf") && limit > 0 {
		out = append(out, suggest.Suggestion{AirportID: 3797, IATA: "JFK", ICAO: "KJFK", Match: suggest.MatchIATA})
	}
	return out
}

// fakeImporter is an IngestRunner whose Start fails once running.
type fakeImporter struct {
	mu      sync.Mutex
	running bool
	started int
}

func (f *fakeImporter) Start(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return "", ingest.ErrAlreadyRunning
	}
	f.running = true
	f.started++
	return "job-1", nil
}

func (f *fakeImporter) Status(context.Context) *ingest.ProgressSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return &ingest.ProgressSummary{Status: ingest.StatusRunning, JobID: "job-1"}
	}
	return &ingest.ProgressSummary{Status: ingest.StatusIdle}
}

func (f *fakeImporter) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// testEnv bundles the fakes behind one router.
type testEnv struct {
	store       *fakeStore
	recommender *fakeRecommender
	importer    *fakeImporter
	cache       *cache.Cache
	handler     http.Handler
}

func newTestEnv(t *testing.T, mw *ChiMiddlewareConfig) *testEnv {
	t.Helper()

	c := cache.New(t.Name(), time.Minute, time.Hour)
	t.Cleanup(c.Close)

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	env := &testEnv{
		store:       newFakeStore(),
		recommender: &fakeRecommender{},
		importer:    &fakeImporter{},
		cache:       c,
	}
	h := NewHandler(env.store, env.recommender, fakeSuggester{}, env.importer, c)
	env.handler = NewRouter(h, mw).SetupChi()
	return env
}

func (e *testEnv) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// testEnvelope mirrors models.APIResponse with raw data for decoding.
type testEnvelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		QueryTimeMS int64                  `json:"query_time_ms"`
		Cached      bool                   `json:"cached"`
		Count       *int                   `json:"count"`
		Diagnostics map[string]interface{} `json:"diagnostics"`
	} `json:"metadata"`
	Error *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env testEnvelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (data %q)", err, string(env.Data))
	}
}

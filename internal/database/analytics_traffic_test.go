// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/skyroute/internal/models"
)

func TestBusiestAirports(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedFixture(t, db)

	got, err := db.BusiestAirports(ctx, 10)
	if err != nil {
		t.Fatalf("BusiestAirports() error = %v", err)
	}

	want := []struct {
		iata  string
		count int64
	}{
		{"LAX", 3},
		{"JFK", 2},
		{"SFO", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("BusiestAirports() returned %d rows, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].IATA != w.iata || got[i].RouteCount != w.count {
			t.Errorf("BusiestAirports()[%d] = %s/%d, want %s/%d", i, got[i].IATA, got[i].RouteCount, w.iata, w.count)
		}
	}
	if got[0].Latitude == nil || *got[0].Latitude != 33.94 {
		t.Errorf("BusiestAirports()[0].Latitude = %v, want 33.94", got[0].Latitude)
	}
	if got[0].City != "Los Angeles" || got[0].Country != "United States" {
		t.Errorf("BusiestAirports()[0] = %+v, want Los Angeles, United States", got[0])
	}

	top1, err := db.BusiestAirports(ctx, 1)
	if err != nil {
		t.Fatalf("BusiestAirports(limit=1) error = %v", err)
	}
	if len(top1) != 1 {
		t.Errorf("BusiestAirports(limit=1) returned %d rows", len(top1))
	}
}

func TestTopAirlines(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedFixture(t, db)

	got, err := db.TopAirlines(ctx, 10)
	if err != nil {
		t.Fatalf("TopAirlines() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("TopAirlines() returned %d rows, want 2", len(got))
	}
	if got[0].IATA != "AA" || got[0].RouteCount != 3 {
		t.Errorf("TopAirlines()[0] = %+v, want AA with 3 routes", got[0])
	}
	if got[1].IATA != "BA" || got[1].RouteCount != 2 || !got[1].Active {
		t.Errorf("TopAirlines()[1] = %+v, want active BA with 2 routes", got[1])
	}
}

func TestPopularRoutes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedFixture(t, db)

	got, err := db.PopularRoutes(ctx, 10)
	if err != nil {
		t.Fatalf("PopularRoutes() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("PopularRoutes() returned %d rows, want 5", len(got))
	}

	first := got[0]
	if first.Source != "JFK" || first.Dest != "LAX" {
		t.Errorf("PopularRoutes()[0] = %s-%s, want JFK-LAX", first.Source, first.Dest)
	}
	if first.AirlineCount != 2 || first.RouteCount != 2 {
		t.Errorf("PopularRoutes()[0] counts = %d/%d, want 2/2", first.AirlineCount, first.RouteCount)
	}
	if first.SourceName != "John F Kennedy International Airport" || first.DestName != "Los Angeles International Airport" {
		t.Errorf("PopularRoutes()[0] names = %q, %q", first.SourceName, first.DestName)
	}

	// Ties fall back to airport id order
	if got[1].SourceID != 1 || got[1].DestID != 3 {
		t.Errorf("PopularRoutes()[1] = %d->%d, want 1->3", got[1].SourceID, got[1].DestID)
	}
}

func TestPopularRoutes_RankedByRouteCount(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// SFO-LHR has three records from one airline, JFK-LAX two from two.
	routes := fixtureRoutes()
	for id := int64(7); id <= 9; id++ {
		routes = append(routes, models.Route{
			ID: id, Airline: "AA", AirlineID: i64(10),
			Source: "SFO", SourceID: 3, Dest: "LHR", DestID: 4,
			RouteText: "SFO-LHR", Fingerprint: []byte{byte(id), 0, 0, 0},
		})
	}
	if err := db.ReplaceDataset(ctx, fixtureAirports(), fixtureAirlines(), routes, 100); err != nil {
		t.Fatalf("ReplaceDataset() error = %v", err)
	}

	got, err := db.PopularRoutes(ctx, 2)
	if err != nil {
		t.Fatalf("PopularRoutes() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("PopularRoutes() returned %d rows, want 2", len(got))
	}
	if got[0].Source != "SFO" || got[0].Dest != "LHR" || got[0].RouteCount != 3 || got[0].AirlineCount != 1 {
		t.Errorf("PopularRoutes()[0] = %+v, want SFO-LHR with 3 routes from 1 airline", got[0])
	}
	if got[1].Source != "JFK" || got[1].Dest != "LAX" {
		t.Errorf("PopularRoutes()[1] = %s-%s, want JFK-LAX", got[1].Source, got[1].Dest)
	}
}

func TestAirportsByCountry(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedFixture(t, db)

	got, err := db.AirportsByCountry(ctx, 20)
	if err != nil {
		t.Fatalf("AirportsByCountry() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("AirportsByCountry() returned %d rows, want 2 (empty country excluded)", len(got))
	}
	if got[0].Country != "United States" || got[0].AirportCount != 3 {
		t.Errorf("AirportsByCountry()[0] = %+v, want United States/3", got[0])
	}
	if got[1].Country != "United Kingdom" || got[1].AirportCount != 1 {
		t.Errorf("AirportsByCountry()[1] = %+v, want United Kingdom/1", got[1])
	}
}

func TestAnalytics_EmptyDataset(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stats, err := db.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Airports != 0 || stats.Routes != 0 || stats.Countries != 0 {
		t.Errorf("Stats() on empty db = %+v", stats)
	}

	busiest, err := db.BusiestAirports(ctx, 10)
	if err != nil {
		t.Fatalf("BusiestAirports() error = %v", err)
	}
	if busiest == nil || len(busiest) != 0 {
		t.Errorf("BusiestAirports() on empty db = %v, want empty non-nil slice", busiest)
	}
}

func TestAnalytics_InvalidLimit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	checks := map[string]func() error{
		"BusiestAirports":   func() error { _, err := db.BusiestAirports(ctx, 0); return err },
		"TopAirlines":       func() error { _, err := db.TopAirlines(ctx, -1); return err },
		"PopularRoutes":     func() error { _, err := db.PopularRoutes(ctx, 0); return err },
		"AirportsByCountry": func() error { _, err := db.AirportsByCountry(ctx, 0); return err },
	}
	for name, check := range checks {
		if err := check(); !errors.Is(err, ErrInvalidLimit) {
			t.Errorf("%s error = %v, want ErrInvalidLimit", name, err)
		}
	}
}

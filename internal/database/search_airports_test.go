// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package database

import (
	"context"
	"testing"
)

func TestSearchAirports(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedFixture(t, db)

	tests := []struct {
		name  string
		query string
		limit int
		want  []int64
	}{
		{"city match", "york", 20, []int64{1}},
		{"iata match case insensitive", "lax", 20, []int64{2}},
		{"country match", "UNITED", 20, []int64{1, 2, 3, 4}},
		{"name match", "heathrow", 20, []int64{4}},
		{"limit applied", "united", 2, []int64{1, 2}},
		{"surrounding whitespace", "  london ", 20, []int64{4}},
		{"like wildcard is literal", "%", 20, []int64{}},
		{"blank query", "   ", 20, []int64{}},
		{"no match", "zzz", 20, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.SearchAirports(ctx, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("SearchAirports(%q) error = %v", tt.query, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SearchAirports(%q) returned %d rows, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("SearchAirports(%q)[%d].ID = %d, want %d", tt.query, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestAirportCatalog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedFixture(t, db)

	airports, err := db.AirportCatalog(ctx)
	if err != nil {
		t.Fatalf("AirportCatalog() error = %v", err)
	}
	if len(airports) != 5 {
		t.Fatalf("AirportCatalog() returned %d rows, want 5", len(airports))
	}
	last := airports[4]
	if last.IATA != "" || last.Latitude != nil || last.Longitude != nil {
		t.Errorf("airport without codes or coordinates = %+v", last)
	}
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package validation

import (
	"net/url"
	"strconv"
	"testing"
)

func TestParseAnalytics(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantErr   string
	}{
		{"default", "", DefaultAnalyticsLimit, ""},
		{"explicit", "limit=25", 25, ""},
		{"upper bound", "limit=50", 50, ""},
		{"too large", "limit=51", 0, "max"},
		{"zero", "limit=0", 0, "min"},
		{"not a number", "limit=ten", 0, "numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req, err := ParseAnalytics(values)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if req.Limit != tt.wantLimit {
					t.Errorf("Limit = %d, want %d", req.Limit, tt.wantLimit)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := err.Errors()[0].Tag(); got != tt.wantErr {
				t.Errorf("Tag() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestParseLimitsPerEndpoint(t *testing.T) {
	tests := []struct {
		name  string
		parse func(url.Values) (int, *RequestValidationError)
		def   int
		max   int
	}{
		{"country", func(v url.Values) (int, *RequestValidationError) {
			r, err := ParseCountry(v)
			return r.Limit, err
		}, 20, 100},
		{"airport search", func(v url.Values) (int, *RequestValidationError) {
			v.Set("q", "london")
			r, err := ParseAirportSearch(v)
			return r.Limit, err
		}, 20, 100},
		{"suggest", func(v url.Values) (int, *RequestValidationError) {
			v.Set("q", "lon")
			r, err := ParseSuggest(v)
			return r.Limit, err
		}, 10, 25},
		{"similar routes", func(v url.Values) (int, *RequestValidationError) {
			v.Set("source", "JFK")
			v.Set("destination", "LAX")
			if l := v.Get("limit"); l != "" {
				v.Set("top_k", l)
			}
			r, err := ParseSimilarRoutes(v)
			return r.TopK, err
		}, 10, 50},
		{"direct routes", func(v url.Values) (int, *RequestValidationError) {
			v.Set("source", "JFK")
			v.Set("destination", "LAX")
			r, err := ParseDirectRoutes(v)
			return r.Limit, err
		}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(url.Values{})
			if err != nil {
				t.Fatalf("default: unexpected error: %v", err)
			}
			if got != tt.def {
				t.Errorf("default = %d, want %d", got, tt.def)
			}

			got, err = tt.parse(url.Values{"limit": {strconv.Itoa(tt.max)}})
			if err != nil {
				t.Fatalf("max: unexpected error: %v", err)
			}
			if got != tt.max {
				t.Errorf("max = %d, want %d", got, tt.max)
			}

			if _, err = tt.parse(url.Values{"limit": {strconv.Itoa(tt.max + 1)}}); err == nil {
				t.Errorf("limit %d should fail validation", tt.max+1)
			}
		})
	}
}

func TestParseAirportRoutes(t *testing.T) {
	req, err := ParseAirportRoutes("3797", url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.AirportID != 3797 || req.Limit != DefaultRoutesLimit {
		t.Errorf("got %+v", req)
	}

	if _, err = ParseAirportRoutes("3797", url.Values{"limit": {"201"}}); err == nil {
		t.Error("limit 201 should fail")
	}

	_, err = ParseAirportRoutes("abc", url.Values{})
	if err == nil {
		t.Fatal("non-numeric airport ID should fail")
	}
	if err.Errors()[0].Field() != "airportID" {
		t.Errorf("Field() = %q, want airportID", err.Errors()[0].Field())
	}

	if _, err = ParseAirportRoutes("0", url.Values{}); err == nil {
		t.Error("airport ID 0 should fail")
	}
}

func TestParseRequiredQuery(t *testing.T) {
	if _, err := ParseAirportSearch(url.Values{"q": {"   "}}); err == nil {
		t.Error("blank q should fail airport search")
	}
	if _, err := ParseSuggest(url.Values{}); err == nil {
		t.Error("missing q should fail suggest")
	}

	req, err := ParseSuggest(url.Values{"q": {"  heath "}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query != "heath" {
		t.Errorf("Query = %q, want trimmed", req.Query)
	}
}

func TestParseSimilarRoutes_Codes(t *testing.T) {
	_, err := ParseSimilarRoutes(url.Values{"source": {"JFK"}})
	if err == nil {
		t.Fatal("missing destination should fail")
	}
	if got := err.Errors()[0].Field(); got != "destination" {
		t.Errorf("Field() = %q, want destination", got)
	}

	req, err := ParseSimilarRoutes(url.Values{"source": {"jfk"}, "destination": {"klax"}, "top_k": {"3"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Source != "jfk" || req.Destination != "klax" || req.TopK != 3 {
		t.Errorf("got %+v", req)
	}

	if _, err = ParseDirectRoutes(url.Values{"source": {"NEW YORK"}, "destination": {"LAX"}}); err == nil {
		t.Error("non-code source should fail")
	}
}

func TestParse_CollectsAllNumericErrors(t *testing.T) {
	_, err := ParseAirportRoutes("x", url.Values{"limit": {"y"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("got %d errors, want 2", len(err.Errors()))
	}
}

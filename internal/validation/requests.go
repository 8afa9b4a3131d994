// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Default page sizes used when a request omits its limit.
const (
	DefaultAnalyticsLimit = 10
	DefaultCountryLimit   = 20
	DefaultSearchLimit    = 20
	DefaultRoutesLimit    = 50
	DefaultSuggestLimit   = 10
	DefaultTopK           = 10
	DefaultDirectLimit    = 100
)

// AnalyticsRequest covers busiest-airports, top-airlines and popular-routes.
type AnalyticsRequest struct {
	Limit int `query:"limit" validate:"min=1,max=50"`
}

// CountryRequest is the airports-by-country query.
type CountryRequest struct {
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// AirportSearchRequest is the free-text airport search.
type AirportSearchRequest struct {
	Query string `query:"q" validate:"required,max=100"`
	Limit int    `query:"limit" validate:"min=1,max=100"`
}

// AirportRoutesRequest lists routes touching one airport.
type AirportRoutesRequest struct {
	AirportID int64 `query:"airportID" validate:"gt=0"`
	Limit     int   `query:"limit" validate:"min=1,max=200"`
}

// SuggestRequest is the autocomplete query.
type SuggestRequest struct {
	Query string `query:"q" validate:"required,max=100"`
	Limit int    `query:"limit" validate:"min=1,max=25"`
}

// SimilarRoutesRequest asks for routes similar to source-destination.
type SimilarRoutesRequest struct {
	Source      string `query:"source" validate:"required,airportcode"`
	Destination string `query:"destination" validate:"required,airportcode"`
	TopK        int    `query:"top_k" validate:"min=1,max=50"`
}

// DirectRoutesRequest asks for routes flying source to destination.
type DirectRoutesRequest struct {
	Source      string `query:"source" validate:"required,airportcode"`
	Destination string `query:"destination" validate:"required,airportcode"`
	Limit       int    `query:"limit" validate:"min=1,max=100"`
}

// paramReader collects parse failures so one response can report all of them.
type paramReader struct {
	values url.Values
	errs   []ValidationError
}

func (p *paramReader) str(key string) string {
	return strings.TrimSpace(p.values.Get(key))
}

func (p *paramReader) integer(key string, def int) int {
	raw := p.str(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, ValidationError{
			field:   key,
			tag:     "numeric",
			value:   raw,
			message: fmt.Sprintf("%s must be an integer", key),
		})
		return def
	}
	return n
}

func (p *paramReader) finish(req interface{}) *RequestValidationError {
	if len(p.errs) > 0 {
		return &RequestValidationError{errors: p.errs}
	}
	return ValidateStruct(req)
}

// ParseAnalytics parses and validates an analytics query.
func ParseAnalytics(values url.Values) (AnalyticsRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := AnalyticsRequest{Limit: p.integer("limit", DefaultAnalyticsLimit)}
	return req, p.finish(&req)
}

// ParseCountry parses and validates an airports-by-country query.
func ParseCountry(values url.Values) (CountryRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := CountryRequest{Limit: p.integer("limit", DefaultCountryLimit)}
	return req, p.finish(&req)
}

// ParseAirportSearch parses and validates an airport search.
func ParseAirportSearch(values url.Values) (AirportSearchRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := AirportSearchRequest{
		Query: p.str("q"),
		Limit: p.integer("limit", DefaultSearchLimit),
	}
	return req, p.finish(&req)
}

// ParseAirportRoutes parses the airport ID path segment and the limit query.
func ParseAirportRoutes(airportID string, values url.Values) (AirportRoutesRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := AirportRoutesRequest{Limit: p.integer("limit", DefaultRoutesLimit)}

	id, err := strconv.ParseInt(strings.TrimSpace(airportID), 10, 64)
	if err != nil {
		p.errs = append(p.errs, ValidationError{
			field:   "airportID",
			tag:     "numeric",
			value:   airportID,
			message: "airportID must be an integer",
		})
	}
	req.AirportID = id
	return req, p.finish(&req)
}

// ParseSuggest parses and validates an autocomplete query.
func ParseSuggest(values url.Values) (SuggestRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := SuggestRequest{
		Query: p.str("q"),
		Limit: p.integer("limit", DefaultSuggestLimit),
	}
	return req, p.finish(&req)
}

// ParseSimilarRoutes parses and validates a similar-routes query.
func ParseSimilarRoutes(values url.Values) (SimilarRoutesRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := SimilarRoutesRequest{
		Source:      p.str("source"),
		Destination: p.str("destination"),
		TopK:        p.integer("top_k", DefaultTopK),
	}
	return req, p.finish(&req)
}

// ParseDirectRoutes parses and validates a direct-routes query.
func ParseDirectRoutes(values url.Values) (DirectRoutesRequest, *RequestValidationError) {
	p := &paramReader{values: values}
	req := DirectRoutesRequest{
		Source:      p.str("source"),
		Destination: p.str("destination"),
		Limit:       p.integer("limit", DefaultDirectLimit),
	}
	return req, p.finish(&req)
}

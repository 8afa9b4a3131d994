// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package validation parses and validates HTTP query parameters using
// go-playground/validator v10.
//
// Each endpoint has a request struct whose `validate` tags carry its limits,
// and a Parse function that reads url.Values, applies the endpoint's default,
// and validates the result:
//
//	req, verr := validation.ParseSimilarRoutes(r.URL.Query())
//	if verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Limits
//
//	busiest-airports, top-airlines, popular-routes   limit 1..50   default 10
//	airports-by-country                              limit 1..100  default 20
//	search/airports                                  limit 1..100  default 20  (q required)
//	search/routes/{airportID}                        limit 1..200  default 50
//	search/suggest                                   limit 1..25   default 10  (q required)
//	recommendations/similar-routes                   top_k 1..50   default 10
//	recommendations/direct-routes                    limit 1..100  default 100
//
// Non-integer numeric parameters are reported with the "numeric" tag instead
// of silently falling back to the default.
//
// # Custom Validators
//
//   - airportcode: 3-letter IATA or 4-letter ICAO code, alphanumeric, case-insensitive
//
// # Error Format
//
// Field names in errors are the query parameter names taken from the `query`
// struct tag. ToAPIError produces the VALIDATION_ERROR envelope:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "limit must be at most 50",
//	    "details": {"field": "limit", "tag": "max", "value": 51}
//	}
//
// The singleton validator caches struct metadata and is safe for concurrent use.
package validation

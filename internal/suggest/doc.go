// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package suggest provides airport autocomplete.
//
// The index maps lowercased IATA and ICAO codes, airport names, name words
// and cities into a patricia trie. A query first collects prefix matches,
// ranked by the field that matched (code before name before city); any
// remaining slots are filled by a fuzzy subsequence match over
// "name city code" labels so that "heathrw" still finds Heathrow.
//
// Rebuild reads the airport catalog and swaps the whole index atomically,
// so Suggest never blocks on a rebuild and never sees a partial index.
package suggest

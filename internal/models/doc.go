// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package models defines data structures for the Skyroute application.

Key Components:

  - Airport, Airline, Route: OpenFlights records as stored in DuckDB
  - DatasetStats and the analytics result types returned by the database
  - APIResponse: Standardized API response wrapper

Models carry JSON tags and no behavior beyond small helpers. Nullable
columns are pointers.
*/
package models

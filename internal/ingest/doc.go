// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package ingest loads the OpenFlights dataset into the route database.

An ingest run:

 1. Downloads any of airports.dat, airlines.dat and routes.dat that are
    missing from the data directory (when ingest.download is set). Downloads
    are paced by a token bucket and guarded by a gobreaker circuit breaker.
 2. Parses the three files concurrently. OpenFlights writes nulls as \N;
    routes with a null source or destination airport id are dropped.
 3. Fits the fingerprint space over every route text and stores each row's
    encoded vector on its route.
 4. Replaces the database contents in batched transactions.
 5. Persists the fitted space snapshot and publishes dataset events.

Only one run may be active at a time; a concurrent Start or Import returns
ErrAlreadyRunning. Run statistics are persisted through a ProgressTracker
(BadgerDB in production) so the status endpoint survives restarts.
*/
package ingest

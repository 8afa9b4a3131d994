// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package main is the entry point for the Skyroute server.

Skyroute loads the OpenFlights airports, airlines and routes datasets into
DuckDB and serves analytics, airport search and fingerprint-based route
similarity over HTTP.

# Application Architecture

The server initializes components in the following order:

 1. Configuration: defaults, optional YAML file, environment (koanf v2)
 2. Logging: zerolog with optional rotating file output
 3. Database: DuckDB with the airports, airlines and routes tables
 4. BadgerDB: fingerprint space snapshots and ingest progress
 5. Services: recommendation, airport suggestions, analytics cache
 6. Events: in-process Watermill bus and the dataset event router
 7. Ingest: OpenFlights importer with the rate-limited, circuit-broken fetcher
 8. Supervisor tree: data, messaging and API layers (suture v4)

# Configuration

	CONFIG_PATH=/etc/skyroute/config.yaml
	HTTP_PORT=8001
	DUCKDB_PATH=/data/skyroute.duckdb
	INGEST_DATA_DIR=/data/openflights
	INGEST_DOWNLOAD=true
	INGEST_ON_STARTUP=true
	RECOMMEND_SPACE_SOURCE=refit
	CACHE_TTL=5m
	LOG_LEVEL=info

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests, the event router closes, and the database is
checkpointed and closed.
*/
package main

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package services provides suture.Service wrappers for Skyroute components.

Each wrapper translates a component's lifecycle (ListenAndServe, Run, a
one-shot import) into suture's context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService), api layer:
  - Wraps *http.Server with graceful shutdown
  - Configurable shutdown timeout for draining connections

Event Router (EventRouterService), messaging layer:
  - Runs the Watermill router that consumes dataset events
  - Builds a fresh router on every restart through a RouterFactory

Ingest (IngestService), data layer:
  - Runs the OpenFlights ingest at startup and on a refresh interval
  - Logs ingest failures instead of returning them
  - Removes itself with suture.ErrDoNotRestart when it has nothing scheduled

# Return Values

Services return ctx.Err() on shutdown so suture can tell a clean stop from a
crash. Any other error triggers a restart subject to the supervisor's
failure threshold and backoff.
*/
package services

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package supervisor builds Skyroute's suture v4 process supervision tree.

	skyroute (root)
	├── data-layer       IngestService (startup and scheduled ingest)
	├── messaging-layer  EventRouterService (dataset.cleared / dataset.ingested consumers)
	└── api-layer        HTTPServerService

Each layer is its own suture.Supervisor, so failure counting and backoff are
per layer: a router that keeps crashing backs off without restarting the HTTP
server. Supervisor events are logged through sutureslog into the zerolog
bridge from the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewIngestService(importer, ingestCfg, logging.WithComponent("ingest")))
	tree.AddMessagingService(services.NewEventRouterService(newRouter))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

Service wrappers live in the services subpackage.
*/
package supervisor

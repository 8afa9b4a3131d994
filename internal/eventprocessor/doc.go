// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package eventprocessor provides the in-process dataset event bus.

The importer publishes a DatasetEvent on two topics:

  - dataset.cleared: the route, airline and airport tables were emptied
    and a new dataset is about to be written
  - dataset.ingested: the new dataset is committed and its fingerprint
    space is fitted

Events travel over a Watermill gochannel Pub/Sub. A Router wraps the
Watermill router with panic recovery and exponential-backoff retry, and
the DatasetHandlers consume both topics to drop cached analytics and
rebuild the airport suggestion index.

# Usage

	bus := eventprocessor.NewBus(nil)
	router, err := eventprocessor.NewRouter(nil, nil)
	if err != nil {
		return err
	}
	handlers := eventprocessor.NewDatasetHandlers(analyticsCache, suggestIndex)
	handlers.Register(router, bus)

	go router.Run(ctx)
	<-router.Running()

	_ = bus.Publish(ctx, eventprocessor.TopicDatasetIngested, event)

Delivery is at-most-once within the process. Nothing is persisted across
restarts; a restart rebuilds the suggestion index from the database.
*/
package eventprocessor

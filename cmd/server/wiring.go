// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package main

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/skyroute/internal/cache"
	"github.com/tomtom215/skyroute/internal/config"
	"github.com/tomtom215/skyroute/internal/database"
	"github.com/tomtom215/skyroute/internal/eventprocessor"
	"github.com/tomtom215/skyroute/internal/ingest"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/snapshot"
	"github.com/tomtom215/skyroute/internal/suggest"
	"github.com/tomtom215/skyroute/internal/supervisor/services"
)

// badgerStores holds the BadgerDB-backed snapshot and progress stores.
// When both paths name the same directory a single database serves both.
type badgerStores struct {
	Snapshots *snapshot.Store
	Progress  ingest.ProgressTracker
	dbs       []*badger.DB
}

func openStores(cfg *config.Config) (*badgerStores, error) {
	s := &badgerStores{}

	snapDB, err := snapshot.Open(cfg.Recommend.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("snapshot store: %w", err)
	}
	s.dbs = append(s.dbs, snapDB)
	s.Snapshots = snapshot.NewStore(snapDB)

	progressDB := snapDB
	if cfg.Ingest.ProgressPath == "" || cfg.Ingest.ProgressPath != cfg.Recommend.SnapshotPath {
		progressDB, err = snapshot.Open(cfg.Ingest.ProgressPath)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("progress store: %w", err)
		}
		s.dbs = append(s.dbs, progressDB)
	}
	s.Progress = ingest.NewBadgerProgress(progressDB)

	logging.Info().
		Str("snapshot_path", cfg.Recommend.SnapshotPath).
		Str("progress_path", cfg.Ingest.ProgressPath).
		Int("databases", len(s.dbs)).
		Msg("BadgerDB stores opened")
	return s, nil
}

// Close closes every opened database.
func (s *badgerStores) Close() {
	var errs []error
	for _, db := range s.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		logging.Error().Err(err).Msg("Error closing BadgerDB")
	}
}

// eventComponents connects the ingest publisher to the cache and
// suggestion index through the in-process bus.
type eventComponents struct {
	Bus           *eventprocessor.Bus
	RouterFactory services.RouterFactory
}

func newEventComponents(analytics *cache.Cache, suggestions *suggest.Index) *eventComponents {
	wmLogger := watermill.NewSlogLogger(logging.NewComponentSlogLogger("eventbus", "warn"))
	bus := eventprocessor.NewBus(wmLogger)
	handlers := eventprocessor.NewDatasetHandlers(analytics, suggestions)

	return &eventComponents{
		Bus: bus,
		RouterFactory: func() (services.EventRouter, error) {
			r, err := eventprocessor.NewRouter(nil, wmLogger)
			if err != nil {
				return nil, err
			}
			handlers.Register(r, bus)
			return r, nil
		},
	}
}

func newImporter(cfg *config.Config, db *database.DB, stores *badgerStores, bus *eventprocessor.Bus) *ingest.Importer {
	opts := []ingest.Option{
		ingest.WithSnapshots(stores.Snapshots),
		ingest.WithPublisher(bus),
		ingest.WithProgress(stores.Progress),
		ingest.WithMaxFeatures(cfg.Recommend.MaxFeatures),
	}
	if cfg.Ingest.Download {
		opts = append(opts, ingest.WithFetcher(ingest.NewFetcher(&cfg.Ingest)))
	}
	return ingest.NewImporter(&cfg.Ingest, db, opts...)
}

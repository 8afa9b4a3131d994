// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tomtom215/skyroute/internal/api"
	"github.com/tomtom215/skyroute/internal/cache"
	"github.com/tomtom215/skyroute/internal/config"
	"github.com/tomtom215/skyroute/internal/database"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/recommend"
	"github.com/tomtom215/skyroute/internal/suggest"
	"github.com/tomtom215/skyroute/internal/supervisor"
	"github.com/tomtom215/skyroute/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		File: logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	})
	defer func() {
		if err := logging.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing log file")
		}
	}()

	logging.Info().
		Str("version", api.Version).
		Str("db_path", cfg.Database.Path).
		Str("data_dir", cfg.Ingest.DataDir).
		Str("space_source", cfg.Recommend.SpaceSource).
		Msg("Starting Skyroute")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		checkpointCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Checkpoint(checkpointCtx); err != nil {
			logging.Warn().Err(err).Msg("Database checkpoint failed")
		}
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	stores, err := openStores(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open BadgerDB")
	}
	defer stores.Close()

	recommendCfg := &recommend.Config{
		SpaceSource:      recommend.SpaceSource(cfg.Recommend.SpaceSource),
		MaxFeatures:      cfg.Recommend.MaxFeatures,
		DirectRouteLimit: cfg.Recommend.DirectRouteLimit,
	}
	if err := recommendCfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("Invalid recommendation configuration")
	}
	recommender := recommend.NewService(db,
		recommend.WithConfig(recommendCfg),
		recommend.WithSnapshots(stores.Snapshots),
		recommend.WithLogger(logging.WithComponent("recommend")),
	)

	suggestions := suggest.NewIndex(db)
	if n, err := suggestions.Rebuild(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial airport suggestion index build failed")
	} else {
		logging.Info().Int("airports", n).Msg("Airport suggestion index built")
	}

	analyticsCache := cache.New("analytics", cfg.Cache.TTL, 0)
	defer analyticsCache.Close()

	events := newEventComponents(analyticsCache, suggestions)
	defer func() {
		if err := events.Bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	importer := newImporter(cfg, db, stores, events.Bus)

	handler := api.NewHandler(db, recommender, suggestions, importer, analyticsCache)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Ingest.OnStartup || cfg.Ingest.RefreshInterval > 0 {
		tree.AddDataService(services.NewIngestService(importer, services.IngestServiceConfig{
			OnStartup:       cfg.Ingest.OnStartup,
			RefreshInterval: cfg.Ingest.RefreshInterval,
		}, logging.WithComponent("ingest")))
	}
	tree.AddMessagingService(services.NewEventRouterService(events.RouterFactory))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Serve returns once the context is canceled or the root supervisor
	// gives up.
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	stop()

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Skyroute stopped gracefully")
}

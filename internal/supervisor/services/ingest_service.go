// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/skyroute/internal/ingest"
)

// Importer is the slice of *ingest.Importer the service drives.
type Importer interface {
	Import(ctx context.Context) (*ingest.Stats, error)
}

// IngestServiceConfig holds configuration for the ingest service.
type IngestServiceConfig struct {
	// OnStartup runs one ingest when the service starts.
	OnStartup bool

	// RefreshInterval re-runs the ingest periodically. Zero disables it.
	RefreshInterval time.Duration

	// Timeout bounds a single ingest run.
	// Default: 30m
	Timeout time.Duration
}

// IngestService runs the dataset ingest under supervision: once at startup
// and then on a fixed schedule. Ingest failures are logged, not returned,
// so a bad download does not put the data layer into restart backoff.
// With neither startup nor refresh configured the service removes itself.
type IngestService struct {
	importer Importer
	config   IngestServiceConfig
	logger   zerolog.Logger
	name     string
}

// NewIngestService creates a new ingest service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIngestService(importer Importer, cfg IngestServiceConfig, logger zerolog.Logger) *IngestService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Minute
	}
	return &IngestService{
		importer: importer,
		config:   cfg,
		logger:   logger.With().Str("service", "ingest").Logger(),
		name:     "ingest-service",
	}
}

// Serve implements the suture.Service interface.
func (s *IngestService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("on_startup", s.config.OnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("ingest service starting")

	if s.config.OnStartup {
		s.run(ctx, "startup")
	}

	if s.config.RefreshInterval <= 0 {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("ingest service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.run(ctx, "scheduled")
		}
	}
}

func (s *IngestService) run(ctx context.Context, trigger string) {
	runCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	stats, err := s.importer.Import(runCtx)
	switch {
	case errors.Is(err, ingest.ErrAlreadyRunning):
		s.logger.Info().Str("trigger", trigger).Msg("ingest already running, skipping")
	case err != nil && ctx.Err() != nil:
		s.logger.Info().Str("trigger", trigger).Msg("ingest canceled due to shutdown")
	case err != nil:
		s.logger.Error().Err(err).Str("trigger", trigger).Msg("ingest failed")
	default:
		s.logger.Info().
			Str("trigger", trigger).
			Str("job_id", stats.JobID).
			Int("airports", stats.Airports).
			Int("airlines", stats.Airlines).
			Int("routes", stats.Routes).
			Dur("duration", time.Since(start)).
			Msg("ingest complete")
	}
}

// String returns the service name for logging.
func (s *IngestService) String() string {
	return s.name
}

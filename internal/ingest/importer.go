// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/skyroute/internal/config"
	"github.com/tomtom215/skyroute/internal/eventprocessor"
	"github.com/tomtom215/skyroute/internal/fingerprint"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
	"github.com/tomtom215/skyroute/internal/models"
)

// Store is the write side of the route database.
type Store interface {
	ReplaceDataset(ctx context.Context, airports []models.Airport, airlines []models.Airline, routes []models.Route, batchSize int) error
}

// SnapshotSaver persists the fingerprint space fitted at ingest.
type SnapshotSaver interface {
	Save(ctx context.Context, snap fingerprint.Snapshot) error
}

// EventPublisher publishes dataset lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event *eventprocessor.DatasetEvent) error
}

// Option configures an Importer.
type Option func(*Importer)

// WithFetcher downloads missing data files before parsing.
func WithFetcher(f *Fetcher) Option {
	return func(i *Importer) { i.fetcher = f }
}

// WithSnapshots persists the fitted fingerprint space after each import.
func WithSnapshots(s SnapshotSaver) Option {
	return func(i *Importer) { i.snapshots = s }
}

// WithPublisher publishes dataset.cleared and dataset.ingested events.
func WithPublisher(p EventPublisher) Option {
	return func(i *Importer) { i.publisher = p }
}

// WithProgress persists run stats. Defaults to an in-memory tracker.
func WithProgress(p ProgressTracker) Option {
	return func(i *Importer) { i.progress = p }
}

// WithMaxFeatures sets the fingerprint vocabulary cap.
func WithMaxFeatures(n int) Option {
	return func(i *Importer) { i.maxFeatures = n }
}

// Importer loads the OpenFlights files into the database.
// At most one import runs at a time.
type Importer struct {
	cfg         *config.IngestConfig
	store       Store
	fetcher     *Fetcher
	snapshots   SnapshotSaver
	publisher   EventPublisher
	progress    ProgressTracker
	maxFeatures int

	mu      sync.RWMutex
	running bool
	stats   *Stats
}

// NewImporter creates an Importer writing to store.
func NewImporter(cfg *config.IngestConfig, store Store, opts ...Option) *Importer {
	i := &Importer{
		cfg:         cfg,
		store:       store,
		progress:    NewInMemoryProgress(),
		maxFeatures: fingerprint.DefaultMaxFeatures,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import runs an ingest synchronously and returns its stats.
// It returns ErrAlreadyRunning if another import holds the lock.
func (i *Importer) Import(ctx context.Context) (*Stats, error) {
	jobID, err := i.begin()
	if err != nil {
		return nil, err
	}
	return i.run(ctx, jobID)
}

// Start launches an ingest in the background and returns its job ID.
// The run is detached from ctx cancellation so an HTTP request that
// triggered it can return immediately.
func (i *Importer) Start(ctx context.Context) (string, error) {
	jobID, err := i.begin()
	if err != nil {
		return "", err
	}
	bg := context.WithoutCancel(ctx)
	go func() {
		if _, err := i.run(bg, jobID); err != nil {
			logging.Ctx(logging.ContextWithJobID(bg, jobID)).Error().Err(err).Msg("Background ingest failed")
		}
	}()
	return jobID, nil
}

func (i *Importer) begin() (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.running {
		return "", ErrAlreadyRunning
	}
	i.running = true
	jobID := uuid.New().String()
	i.stats = &Stats{JobID: jobID, StartTime: time.Now().UTC()}
	return jobID, nil
}

func (i *Importer) run(ctx context.Context, jobID string) (stats *Stats, err error) {
	ctx = logging.ContextWithJobID(ctx, jobID)
	logger := logging.Ctx(ctx)
	logger.Info().Str("data_dir", i.cfg.DataDir).Msg("Starting OpenFlights ingest")

	i.saveProgress(ctx)

	// The returned stats are always the final copy taken here.
	defer func() {
		i.mu.Lock()
		i.running = false
		i.stats.EndTime = time.Now().UTC()
		if err != nil {
			i.stats.Error = logging.SanitizeError(err.Error())
		}
		final := copyStats(i.stats)
		i.mu.Unlock()

		metrics.RecordIngest(final.Duration(), final.Counts(), err)
		i.saveProgress(ctx)
		stats = final
	}()

	if i.fetcher != nil && i.cfg.Download {
		downloaded, fetchErr := i.fetcher.EnsureFiles(ctx, i.cfg.DataDir, DataFiles)
		i.update(func(s *Stats) { s.Downloaded = downloaded })
		if fetchErr != nil {
			return nil, fetchErr
		}
	}

	dataset, dropped, err := i.parseAll(ctx)
	if err != nil {
		return nil, err
	}
	i.update(func(s *Stats) { s.Dropped = dropped })

	snap, err := i.fingerprintRoutes(dataset.Routes)
	if err != nil {
		return nil, err
	}
	i.update(func(s *Stats) { s.VocabularySize = len(snap.Vocabulary) })

	i.publish(ctx, eventprocessor.NewDatasetEvent(eventprocessor.TopicDatasetCleared, jobID))

	batchSize := i.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}
	if err := i.store.ReplaceDataset(ctx, dataset.Airports, dataset.Airlines, dataset.Routes, batchSize); err != nil {
		return nil, fmt.Errorf("insert dataset into database: %w", err)
	}
	i.update(func(s *Stats) {
		s.Airports = len(dataset.Airports)
		s.Airlines = len(dataset.Airlines)
		s.Routes = len(dataset.Routes)
	})

	if i.snapshots != nil {
		if err := i.snapshots.Save(ctx, snap); err != nil {
			// The stored vectors are intact; only drift diagnostics lose
			// their reference until the next ingest.
			logger.Warn().Err(err).Msg("Failed to persist fingerprint space snapshot")
		}
	}

	event := eventprocessor.NewDatasetEvent(eventprocessor.TopicDatasetIngested, jobID)
	event.Airports = len(dataset.Airports)
	event.Airlines = len(dataset.Airlines)
	event.Routes = len(dataset.Routes)
	event.VocabularySize = len(snap.Vocabulary)
	i.publish(ctx, event)

	logger.Info().
		Int("airports", event.Airports).
		Int("airlines", event.Airlines).
		Int("routes", event.Routes).
		Int("dropped", dropped).
		Int("vocabulary_size", event.VocabularySize).
		Msg("OpenFlights ingest completed")

	return nil, nil
}

// parseAll parses the three data files concurrently.
func (i *Importer) parseAll(ctx context.Context) (*Dataset, int, error) {
	var (
		ds                        Dataset
		apStats, alStats, rtStats ParseStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.Airports, apStats, err = parseFile(gctx, i.cfg.DataDir, AirportsFile, ParseAirports)
		return err
	})
	g.Go(func() (err error) {
		ds.Airlines, alStats, err = parseFile(gctx, i.cfg.DataDir, AirlinesFile, ParseAirlines)
		return err
	})
	g.Go(func() (err error) {
		ds.Routes, rtStats, err = parseFile(gctx, i.cfg.DataDir, RoutesFile, ParseRoutes)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	logging.Ctx(ctx).Debug().
		Int("airport_rows", apStats.Rows).
		Int("airline_rows", alStats.Rows).
		Int("route_rows", rtStats.Rows).
		Int("routes_dropped", rtStats.Dropped).
		Msg("Parsed OpenFlights files")

	return &ds, apStats.Dropped + alStats.Dropped + rtStats.Dropped, nil
}

func parseFile[T any](ctx context.Context, dir, name string, parse func(io.Reader) ([]T, ParseStats, error)) ([]T, ParseStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, ParseStats{}, err
	}
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("file", name).Msg("Error closing data file")
		}
	}()
	return parse(f)
}

// fingerprintRoutes fits the space over every route text and stores each
// row's encoded vector on the route.
func (i *Importer) fingerprintRoutes(routes []models.Route) (fingerprint.Snapshot, error) {
	corpus := make([]string, len(routes))
	for idx := range routes {
		corpus[idx] = routes[idx].RouteText
	}

	space, matrix, err := fingerprint.Fit(corpus, fingerprint.WithMaxFeatures(i.maxFeatures))
	if err != nil {
		return fingerprint.Snapshot{}, fmt.Errorf("fingerprint routes: %w", err)
	}
	for idx := range routes {
		routes[idx].Fingerprint = fingerprint.EncodeVector(matrix[idx])
	}
	return space.Snapshot(corpus), nil
}

func (i *Importer) publish(ctx context.Context, event *eventprocessor.DatasetEvent) {
	if i.publisher == nil {
		return
	}
	if err := i.publisher.Publish(ctx, event.Type, event); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("topic", event.Type).Msg("Failed to publish dataset event")
	}
}

func (i *Importer) update(fn func(*Stats)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fn(i.stats)
}

func (i *Importer) saveProgress(ctx context.Context) {
	if i.progress == nil {
		return
	}
	i.mu.RLock()
	snapshot := copyStats(i.stats)
	i.mu.RUnlock()
	if err := i.progress.Save(ctx, snapshot); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to save ingest progress")
	}
}

// Status returns the current run, or the last persisted one when idle.
func (i *Importer) Status(ctx context.Context) *ProgressSummary {
	i.mu.RLock()
	running := i.running
	current := copyStats(i.stats)
	i.mu.RUnlock()

	if current != nil {
		return current.ToSummary(running)
	}
	if i.progress == nil {
		return (*Stats)(nil).ToSummary(false)
	}
	persisted, err := i.progress.Load(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to load ingest progress")
		return (*Stats)(nil).ToSummary(false)
	}
	return persisted.ToSummary(false)
}

// IsRunning returns whether an import is currently in progress.
func (i *Importer) IsRunning() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.running
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skyroute/internal/fingerprint"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
	"github.com/tomtom215/skyroute/internal/similarity"
)

// Service computes similar-route recommendations.
//
// Service holds no per-call state and is safe for concurrent use.
type Service struct {
	store     RouteStore
	snapshots SnapshotLoader
	config    *Config
	logger    zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithConfig sets the service configuration. A nil config keeps the default.
func WithConfig(cfg *Config) ServiceOption {
	return func(s *Service) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithSnapshots enables drift detection and the persisted space source.
func WithSnapshots(loader SnapshotLoader) ServiceOption {
	return func(s *Service) {
		s.snapshots = loader
	}
}

// WithLogger overrides the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger.With().Str("component", "recommend").Logger()
	}
}

// NewService creates a recommendation service over store.
func NewService(store RouteStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		config: DefaultConfig(),
		logger: logging.WithComponent("recommend"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the active configuration.
func (s *Service) Config() Config {
	return *s.config
}

// Recommend returns the topK stored routes most similar to source-dest.
//
// Codes are trimmed and uppercased. Results are ordered by descending
// similarity; equal scores keep corpus order. Fewer than topK results are
// returned when the corpus is smaller.
func (s *Service) Recommend(ctx context.Context, source, dest string, topK int) (*Recommendation, error) {
	start := time.Now()

	rec, err := s.recommend(ctx, source, dest, topK)

	switch {
	case err == nil:
		metrics.RecordRecommendation(string(rec.Diagnostics.SpaceSource), "ok", rec.Diagnostics.CorpusSize, time.Since(start))
	case errors.Is(err, ErrNotFound):
		metrics.RecordRecommendation("", "not_found", 0, time.Since(start))
	case errors.Is(err, ErrInvalidInput):
		metrics.RecordRecommendation("", "invalid", 0, time.Since(start))
	default:
		metrics.RecordRecommendation("", "error", 0, time.Since(start))
	}

	return rec, err
}

func (s *Service) recommend(ctx context.Context, source, dest string, topK int) (*Recommendation, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive, got %d", ErrInvalidInput, topK)
	}
	source, dest = NormalizeCode(source), NormalizeCode(dest)
	if source == "" || dest == "" {
		return nil, fmt.Errorf("%w: source and destination are required", ErrInvalidInput)
	}
	query := RouteText(source, dest)

	rows, err := s.store.AllRouteFingerprints(ctx)
	if err != nil {
		return nil, fmt.Errorf("load route corpus: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, &fingerprint.EmptyCorpusError{})
	}

	diag := Diagnostics{CorpusSize: len(rows)}

	texts := make([]string, len(rows))
	for i := range rows {
		texts[i] = rows[i].RouteText
	}

	// Undecodable rows drop out of scoring but their route text stays in the
	// corpus the space is fit over.
	kept := make([]int, 0, len(rows))
	vectors := make([][]float64, 0, len(rows))
	for i := range rows {
		vec, decodeErr := fingerprint.DecodeVector(rows[i].Fingerprint)
		if decodeErr != nil {
			diag.Skipped++
			s.logger.Debug().Err(decodeErr).Str("route", rows[i].RouteText).Msg("Skipping unreadable fingerprint")
			continue
		}
		kept = append(kept, i)
		vectors = append(vectors, vec)
	}
	if diag.Skipped > 0 {
		metrics.RecordRecommendSkipped(diag.Skipped)
		logging.CtxWarn(ctx).
			Str("component", "recommend").
			Int("skipped", diag.Skipped).
			Int("corpus_size", diag.CorpusSize).
			Msg("Skipped routes with unreadable fingerprints")
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: all %d stored fingerprints are unreadable", ErrNotFound, diag.Skipped)
	}

	space, err := s.resolveSpace(ctx, texts, &diag)
	if err != nil {
		if errors.Is(err, fingerprint.ErrEmptyCorpus) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("fit fingerprint space: %w", err)
	}
	diag.SpaceDim = space.Dim()

	q := space.Encode(query)
	for _, vec := range vectors {
		if len(vec) != len(q) {
			diag.DimensionMismatch++
		}
	}
	if diag.DimensionMismatch > 0 {
		logging.CtxWarn(ctx).
			Str("component", "recommend").
			Int("mismatched", diag.DimensionMismatch).
			Int("space_dim", diag.SpaceDim).
			Msg("Stored fingerprints do not match query space width")
	}

	scores := similarity.ScoreAll(q, vectors)
	top := similarity.TopK(scores, topK)

	results := make([]Result, 0, len(top))
	for _, j := range top {
		results = append(results, Result{
			Route:      toRoute(rows[kept[j]]),
			Similarity: scores[j],
		})
	}

	return &Recommendation{
		Query:       query,
		Results:     results,
		Diagnostics: diag,
	}, nil
}

// DirectRoutes returns stored routes that fly exactly source to dest. A
// non-positive or oversized limit is replaced by the configured cap.
func (s *Service) DirectRoutes(ctx context.Context, source, dest string, limit int) ([]Route, error) {
	source, dest = NormalizeCode(source), NormalizeCode(dest)
	if source == "" || dest == "" {
		return nil, fmt.Errorf("%w: source and destination are required", ErrInvalidInput)
	}
	if limit <= 0 || limit > s.config.DirectRouteLimit {
		limit = s.config.DirectRouteLimit
	}

	rows, err := s.store.DirectRoutes(ctx, source, dest, limit)
	if err != nil {
		return nil, fmt.Errorf("load direct routes: %w", err)
	}

	routes := make([]Route, 0, len(rows))
	for i := range rows {
		routes = append(routes, toRoute(rows[i]))
	}
	return routes, nil
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package recommend

import (
	"context"

	"github.com/tomtom215/skyroute/internal/fingerprint"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
)

// resolveSpace picks the space that encodes the query and fills the space
// and drift fields of diag.
func (s *Service) resolveSpace(ctx context.Context, texts []string, diag *Diagnostics) (*fingerprint.Space, error) {
	persisted := s.loadPersisted(ctx)

	if s.config.SpaceSource == SpacePersisted && persisted != nil {
		diag.SpaceSource = SpacePersisted
		diag.Drift = persisted.snap.Checksum != fingerprint.CorpusChecksum(texts)
		if diag.Drift {
			s.reportDrift(ctx, persisted.snap, len(texts))
		}
		return persisted.space, nil
	}

	refit, _, err := fingerprint.Fit(texts, fingerprint.WithMaxFeatures(s.config.MaxFeatures))
	if err != nil {
		return nil, err
	}
	diag.SpaceSource = SpaceRefit

	if persisted != nil {
		diag.Drift = persisted.snap.Checksum != fingerprint.CorpusChecksum(texts) ||
			!refit.Equal(persisted.space)
		if diag.Drift {
			s.reportDrift(ctx, persisted.snap, len(texts))
		}
	}
	return refit, nil
}

type persistedSpace struct {
	snap  *fingerprint.Snapshot
	space *fingerprint.Space
}

// loadPersisted returns nil when no snapshot loader is configured, none was
// saved, or the saved one is unusable.
func (s *Service) loadPersisted(ctx context.Context) *persistedSpace {
	if s.snapshots == nil {
		return nil
	}

	snap, err := s.snapshots.LoadSpace(ctx)
	if err != nil {
		logging.CtxErr(ctx, err).Str("component", "recommend").Msg("Failed to load persisted fingerprint space")
		return nil
	}
	if snap == nil {
		return nil
	}

	space, err := fingerprint.FromSnapshot(*snap)
	if err != nil {
		logging.CtxErr(ctx, err).Str("component", "recommend").Msg("Persisted fingerprint space is invalid")
		return nil
	}
	return &persistedSpace{snap: snap, space: space}
}

func (s *Service) reportDrift(ctx context.Context, snap *fingerprint.Snapshot, corpusSize int) {
	metrics.RecordSpaceDrift()
	logging.CtxWarn(ctx).
		Str("component", "recommend").
		Int("snapshot_corpus_size", snap.CorpusSize).
		Int("live_corpus_size", corpusSize).
		Time("snapshot_fitted_at", snap.FittedAt).
		Msg("Route corpus has drifted from the persisted fingerprint space")
}

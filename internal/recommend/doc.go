// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package recommend finds routes whose identifiers resemble a query route.
//
// # Pipeline
//
// For every call to Service.Recommend:
//
//  1. The query codes are trimmed and uppercased into "SRC-DST".
//  2. The full route corpus and its stored fingerprints are loaded from the
//     RouteStore.
//  3. A fingerprint space is fit over the corpus route texts.
//  4. The query is encoded in that space and scored by cosine similarity
//     against every stored fingerprint that decodes.
//  5. The top K rows are returned, best first, ties in corpus order.
//
// Nothing is cached between calls.
//
// # Space Source
//
// Stored fingerprints were produced by the space fit at ingest time. Refitting
// at query time only reproduces that space when the corpus is unchanged, so
// the ingest space is also persisted as a fingerprint.Snapshot. With a
// SnapshotLoader configured the service compares the live corpus against the
// snapshot and reports drift through Diagnostics, logs and metrics.
//
//   - SpaceRefit (default): always use the refit space.
//   - SpacePersisted: use the snapshot when it is loadable, falling back to
//     the refit space otherwise.
//
// # Errors
//
// A stored fingerprint that fails to decode is skipped and counted in
// Diagnostics.Skipped. An empty corpus, or one where every row is skipped,
// returns ErrNotFound.
//
// # Usage
//
//	svc := recommend.NewService(db,
//	    recommend.WithConfig(cfg),
//	    recommend.WithSnapshots(snapshotStore),
//	)
//	rec, err := svc.Recommend(ctx, "jfk", "lax", 10)
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // no comparable routes
//	}
package recommend

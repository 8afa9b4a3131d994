// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/skyroute/internal/fingerprint"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db)
}

func fitSnapshot(t *testing.T, corpus []string) fingerprint.Snapshot {
	t.Helper()

	space, _, err := fingerprint.Fit(corpus)
	require.NoError(t, err)
	return space.Snapshot(corpus)
}

func TestStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	store := setupStore(t)

	snap, err := store.LoadSpace(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)

	prev, err := store.Previous(context.Background())
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store := setupStore(t)
	corpus := []string{"JFK-LAX", "LAX-JFK", "JFK-SFO"}
	want := fitSnapshot(t, corpus)

	require.NoError(t, store.Save(context.Background(), want))

	got, err := store.LoadSpace(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.Vocabulary, got.Vocabulary)
	assert.Equal(t, want.IDF, got.IDF)
	assert.Equal(t, want.Checksum, got.Checksum)
	assert.Equal(t, want.CorpusSize, got.CorpusSize)
	assert.True(t, want.FittedAt.Equal(got.FittedAt))

	restored, err := fingerprint.FromSnapshot(*got)
	require.NoError(t, err)
	assert.Equal(t, fingerprint.CorpusChecksum(corpus), got.Checksum)
	assert.Equal(t, len(want.Vocabulary), restored.Dim())
}

func TestStore_SaveKeepsPrevious(t *testing.T) {
	t.Parallel()

	store := setupStore(t)
	first := fitSnapshot(t, []string{"JFK-LAX"})
	second := fitSnapshot(t, []string{"BOS-MIA", "ORD-DEN"})

	require.NoError(t, store.Save(context.Background(), first))
	require.NoError(t, store.Save(context.Background(), second))

	current, err := store.LoadSpace(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.Checksum, current.Checksum)

	prev, err := store.Previous(context.Background())
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, first.Checksum, prev.Checksum)
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	store := setupStore(t)
	require.NoError(t, store.Save(context.Background(), fitSnapshot(t, []string{"JFK-LAX"})))
	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))

	snap, err := store.LoadSpace(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	store := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, fingerprint.Snapshot{}), context.Canceled)
	_, err := store.LoadSpace(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

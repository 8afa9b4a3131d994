// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Restore(t *testing.T) {
	t.Parallel()

	space, _, err := Fit(routeCorpus)
	require.NoError(t, err)

	snap := space.Snapshot(routeCorpus)
	assert.Equal(t, len(routeCorpus), snap.CorpusSize)
	assert.Equal(t, CorpusChecksum(routeCorpus), snap.Checksum)

	restored, err := FromSnapshot(snap)
	require.NoError(t, err)
	assert.True(t, space.Equal(restored))
	assert.Equal(t, space.Encode("JFK-SFO"), restored.Encode("JFK-SFO"))
}

func TestFromSnapshot_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap Snapshot
	}{
		{"empty", Snapshot{MinN: 2, MaxN: 5}},
		{"weight mismatch", Snapshot{Vocabulary: []string{"ab"}, MinN: 2, MaxN: 5}},
		{"bad range", Snapshot{Vocabulary: []string{"ab"}, IDF: []float64{1}, MinN: 3, MaxN: 2}},
		{"duplicate", Snapshot{Vocabulary: []string{"ab", "ab"}, IDF: []float64{1, 1}, MinN: 2, MaxN: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromSnapshot(tt.snap)
			assert.Error(t, err)
		})
	}
}

func TestCorpusChecksum_OrderSensitive(t *testing.T) {
	t.Parallel()

	a := CorpusChecksum([]string{"JFK-LAX", "LAX-JFK"})
	b := CorpusChecksum([]string{"LAX-JFK", "JFK-LAX"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CorpusChecksum([]string{"JFK-LAX", "LAX-JFK"}))
	assert.NotEqual(t, CorpusChecksum([]string{"AB", "C"}), CorpusChecksum([]string{"A", "BC"}))
}

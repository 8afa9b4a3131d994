// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"time"
)

// Snapshot is the persistable form of a fitted Space.
type Snapshot struct {
	Vocabulary  []string  `msgpack:"vocabulary" json:"vocabulary"`
	IDF         []float64 `msgpack:"idf" json:"idf"`
	MinN        int       `msgpack:"min_n" json:"min_n"`
	MaxN        int       `msgpack:"max_n" json:"max_n"`
	MaxFeatures int       `msgpack:"max_features" json:"max_features"`
	CorpusSize  int       `msgpack:"corpus_size" json:"corpus_size"`
	Checksum    string    `msgpack:"checksum" json:"checksum"`
	FittedAt    time.Time `msgpack:"fitted_at" json:"fitted_at"`
}

// Snapshot captures the space together with a checksum of the corpus it was
// fit over.
func (s *Space) Snapshot(corpus []string) Snapshot {
	return Snapshot{
		Vocabulary:  slices.Clone(s.vocabulary),
		IDF:         slices.Clone(s.idf),
		MinN:        s.analyzer.MinN,
		MaxN:        s.analyzer.MaxN,
		MaxFeatures: s.maxFeatures,
		CorpusSize:  len(corpus),
		Checksum:    CorpusChecksum(corpus),
		FittedAt:    time.Now().UTC(),
	}
}

// FromSnapshot restores a Space.
func FromSnapshot(snap Snapshot) (*Space, error) {
	if len(snap.Vocabulary) == 0 {
		return nil, fmt.Errorf("snapshot has empty vocabulary")
	}
	if len(snap.Vocabulary) != len(snap.IDF) {
		return nil, fmt.Errorf("snapshot vocabulary has %d terms but %d weights", len(snap.Vocabulary), len(snap.IDF))
	}
	if snap.MinN < 1 || snap.MaxN < snap.MinN {
		return nil, fmt.Errorf("snapshot has invalid n-gram range %d..%d", snap.MinN, snap.MaxN)
	}

	index := make(map[string]int, len(snap.Vocabulary))
	for j, term := range snap.Vocabulary {
		if _, dup := index[term]; dup {
			return nil, fmt.Errorf("snapshot has duplicate term %q", term)
		}
		index[term] = j
	}

	return &Space{
		analyzer:    Analyzer{MinN: snap.MinN, MaxN: snap.MaxN},
		maxFeatures: snap.MaxFeatures,
		vocabulary:  slices.Clone(snap.Vocabulary),
		index:       index,
		idf:         slices.Clone(snap.IDF),
	}, nil
}

// CorpusChecksum returns a hex SHA-256 over the corpus in order.
func CorpusChecksum(corpus []string) string {
	h := sha256.New()
	for _, text := range corpus {
		h.Write([]byte(text))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

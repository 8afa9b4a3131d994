// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package similarity scores fingerprints against a query by cosine similarity.
//
// All functions are pure: inputs are never modified and no state is kept
// between calls.
package similarity

import (
	"math"
	"sort"
)

// Cosine returns dot(a, b) / (|a| * |b|).
// Vectors of different length, empty vectors and zero vectors score 0.
// For non-negative inputs the result is clamped to [0, 1].
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	switch {
	case score > 1:
		return 1
	case score < 0:
		return 0
	}
	return score
}

// ScoreAll returns Cosine(query, row) for every row, in row order.
func ScoreAll(query []float64, matrix [][]float64) []float64 {
	scores := make([]float64, len(matrix))
	for i, row := range matrix {
		scores[i] = Cosine(query, row)
	}
	return scores
}

// TopK returns the indices of the k highest scores, best first.
// Equal scores keep their original order. k larger than len(scores) returns
// every index; k <= 0 returns none.
func TopK(scores []float64, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return []int{}
	}

	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	if k < len(idx) {
		idx = idx[:k]
	}
	return idx
}

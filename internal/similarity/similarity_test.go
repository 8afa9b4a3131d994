// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package similarity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero query", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero row", []float64{1, 1}, []float64{0, 0}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1, 1}, []float64{1, 1, 1}, 0},
		{"empty", nil, nil, 0},
		{"partial", []float64{1, 1}, []float64{1, 0}, 1 / math.Sqrt(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-12)
		})
	}
}

func TestScoreAll_RangeAndOrder(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	matrix := make([][]float64, 50)
	for i := range matrix {
		row := make([]float64, 16)
		for j := range row {
			if rng.Intn(3) == 0 {
				row[j] = rng.Float64()
			}
		}
		matrix[i] = row
	}
	matrix[7] = make([]float64, 16)

	query := append([]float64(nil), matrix[3]...)
	before := append([]float64(nil), query...)

	scores := ScoreAll(query, matrix)
	assert.Len(t, scores, len(matrix))
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, "row %d", i)
		assert.LessOrEqual(t, s, 1.0, "row %d", i)
	}
	assert.Equal(t, 0.0, scores[7])
	assert.Equal(t, before, query, "query must not be mutated")
}

func TestScoreAll_ZeroQuery(t *testing.T) {
	t.Parallel()

	scores := ScoreAll([]float64{0, 0, 0}, [][]float64{{1, 0, 0}, {0, 1, 1}})
	assert.Equal(t, []float64{0, 0}, scores)
}

func TestTopK(t *testing.T) {
	t.Parallel()

	scores := []float64{0.2, 0.9, 0.5, 0.9, 0.1}

	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"top two keeps tie order", 2, []int{1, 3}},
		{"top three", 3, []int{1, 3, 2}},
		{"k beyond length", 10, []int{1, 3, 2, 0, 4}},
		{"zero", 0, []int{}},
		{"negative", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TopK(scores, tt.k))
		})
	}

	assert.Equal(t, []int{}, TopK(nil, 3))
}

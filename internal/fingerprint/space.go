// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"math"
	"slices"
	"sort"
)

const (
	// DefaultMaxFeatures caps the number of columns in a fitted space.
	DefaultMaxFeatures = 128

	// DefaultMinN is the shortest n-gram extracted.
	DefaultMinN = 2

	// DefaultMaxN is the longest n-gram extracted.
	DefaultMaxN = 5
)

type options struct {
	maxFeatures int
	minN        int
	maxN        int
}

// Option configures Fit.
type Option func(*options)

// WithMaxFeatures overrides the feature cap. Values <= 0 keep the default.
func WithMaxFeatures(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFeatures = n
		}
	}
}

// WithNGramRange overrides the n-gram length range.
func WithNGramRange(minN, maxN int) Option {
	return func(o *options) {
		if minN >= 1 && maxN >= minN {
			o.minN = minN
			o.maxN = maxN
		}
	}
}

// Matrix holds one fingerprint row per corpus entry.
type Matrix [][]float64

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the row width, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Space maps text into a fixed TF-IDF column space.
// A Space is immutable after Fit and safe for concurrent use.
type Space struct {
	analyzer    Analyzer
	maxFeatures int
	vocabulary  []string
	index       map[string]int
	idf         []float64
}

// Fit builds a space over corpus and returns it with the corpus fingerprints.
//
// Feature selection keeps the terms with the highest total count across the
// corpus, with ties going to the term encountered first. IDF is smoothed:
// ln((1+n)/(1+df)) + 1. Rows are tf*idf, L2-normalized.
//
// An empty corpus, or one with no extractable terms, returns *EmptyCorpusError.
func Fit(corpus []string, opts ...Option) (*Space, Matrix, error) {
	if len(corpus) == 0 {
		return nil, nil, &EmptyCorpusError{}
	}

	o := options{
		maxFeatures: DefaultMaxFeatures,
		minN:        DefaultMinN,
		maxN:        DefaultMaxN,
	}
	for _, opt := range opts {
		opt(&o)
	}

	analyzer := Analyzer{MinN: o.minN, MaxN: o.maxN}

	docs := make([]map[string]int, len(corpus))
	totals := make(map[string]int)
	var order []string
	for i, text := range corpus {
		counts, seen := analyzer.termCounts(text)
		for _, term := range seen {
			if _, ok := totals[term]; !ok {
				order = append(order, term)
			}
			totals[term] += counts[term]
		}
		docs[i] = counts
	}

	if len(order) == 0 {
		return nil, nil, &EmptyCorpusError{}
	}

	vocabulary := selectFeatures(order, totals, o.maxFeatures)
	sort.Strings(vocabulary)

	index := make(map[string]int, len(vocabulary))
	for j, term := range vocabulary {
		index[term] = j
	}

	df := make([]int, len(vocabulary))
	for _, counts := range docs {
		for term := range counts {
			if j, ok := index[term]; ok {
				df[j]++
			}
		}
	}

	n := float64(len(corpus))
	idf := make([]float64, len(vocabulary))
	for j := range vocabulary {
		idf[j] = math.Log((1+n)/(1+float64(df[j]))) + 1
	}

	space := &Space{
		analyzer:    analyzer,
		maxFeatures: o.maxFeatures,
		vocabulary:  vocabulary,
		index:       index,
		idf:         idf,
	}

	matrix := make(Matrix, len(docs))
	for i, counts := range docs {
		matrix[i] = space.weigh(counts)
	}

	return space, matrix, nil
}

// selectFeatures returns the limit most frequent terms. order must list terms
// by first occurrence; the stable sort keeps that order among equal counts.
func selectFeatures(order []string, totals map[string]int, limit int) []string {
	ranked := slices.Clone(order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Encode fingerprints text in this space. Terms outside the vocabulary are
// ignored, so text sharing nothing with the corpus encodes to a zero vector.
func (s *Space) Encode(text string) []float64 {
	counts, _ := s.analyzer.termCounts(text)
	return s.weigh(counts)
}

// EncodeAll fingerprints every entry of texts.
func (s *Space) EncodeAll(texts []string) Matrix {
	m := make(Matrix, len(texts))
	for i, text := range texts {
		m[i] = s.Encode(text)
	}
	return m
}

func (s *Space) weigh(counts map[string]int) []float64 {
	vec := make([]float64, len(s.vocabulary))
	for term, c := range counts {
		if j, ok := s.index[term]; ok {
			vec[j] = float64(c) * s.idf[j]
		}
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// Dim returns the number of columns.
func (s *Space) Dim() int {
	return len(s.vocabulary)
}

// Vocabulary returns a copy of the column features in column order.
func (s *Space) Vocabulary() []string {
	return slices.Clone(s.vocabulary)
}

// IDF returns a copy of the per-column IDF weights.
func (s *Space) IDF() []float64 {
	return slices.Clone(s.idf)
}

// Analyzer returns the analyzer the space was fit with.
func (s *Space) Analyzer() Analyzer {
	return s.analyzer
}

// idfTolerance absorbs float noise when comparing spaces restored from disk.
const idfTolerance = 1e-9

// Equal reports whether both spaces share the analyzer, vocabulary and IDF
// weights, so vectors from one are comparable with vectors from the other.
func (s *Space) Equal(other *Space) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.analyzer != other.analyzer || !slices.Equal(s.vocabulary, other.vocabulary) {
		return false
	}
	for j := range s.idf {
		if math.Abs(s.idf[j]-other.idf[j]) > idfTolerance {
			return false
		}
	}
	return true
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import "strings"

// Analyzer extracts word-bounded character n-grams from text.
type Analyzer struct {
	MinN int
	MaxN int
}

// DefaultAnalyzer returns the 2..5 gram analyzer used for route identifiers.
func DefaultAnalyzer() Analyzer {
	return Analyzer{MinN: DefaultMinN, MaxN: DefaultMaxN}
}

// Analyze returns the n-grams of text in extraction order, duplicates included.
//
// Every whitespace-separated word is lowercased and padded as " word ". For
// each n the padded word yields all of its n-grams; a padded word no longer
// than n is emitted once, whole, and larger n are not tried for it.
func (a Analyzer) Analyze(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return nil
	}

	grams := make([]string, 0, len(text)*(a.MaxN-a.MinN+1))
	for _, word := range words {
		padded := []rune(" " + word + " ")
		for n := a.MinN; n <= a.MaxN; n++ {
			if len(padded) <= n {
				grams = append(grams, string(padded))
				break
			}
			for i := 0; i+n <= len(padded); i++ {
				grams = append(grams, string(padded[i:i+n]))
			}
		}
	}
	return grams
}

// termCounts returns per-term counts for text along with the order in which
// terms were first seen.
func (a Analyzer) termCounts(text string) (map[string]int, []string) {
	grams := a.Analyze(text)
	counts := make(map[string]int, len(grams))
	order := make([]string, 0, len(grams))
	for _, g := range grams {
		if counts[g] == 0 {
			order = append(order, g)
		}
		counts[g]++
	}
	return counts, order
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		analyzer Analyzer
		text     string
		want     []string
	}{
		{
			name:     "bigrams keep padding and separator",
			analyzer: Analyzer{MinN: 2, MaxN: 2},
			text:     "JFK-LAX",
			want:     []string{" j", "jf", "fk", "k-", "-l", "la", "ax", "x "},
		},
		{
			name:     "short word emitted once then stops",
			analyzer: Analyzer{MinN: 2, MaxN: 5},
			text:     "a",
			want:     []string{" a", "a ", " a "},
		},
		{
			name:     "words are analyzed independently",
			analyzer: Analyzer{MinN: 3, MaxN: 3},
			text:     "ab  CD",
			want:     []string{" ab", "ab ", " cd", "cd "},
		},
		{
			name:     "blank text",
			analyzer: DefaultAnalyzer(),
			text:     " \t ",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.analyzer.Analyze(tt.text))
		})
	}
}

func TestAnalyzer_RouteGramCount(t *testing.T) {
	t.Parallel()

	// " jfk-lax " has 9 runes: 8 + 7 + 6 + 5 grams for n = 2..5.
	grams := DefaultAnalyzer().Analyze("JFK-LAX")
	assert.Len(t, grams, 26)
	assert.Contains(t, grams, " jfk-")
	assert.Contains(t, grams, "k-la")
}

func TestAnalyzer_CaseInsensitive(t *testing.T) {
	t.Parallel()

	a := DefaultAnalyzer()
	assert.Equal(t, a.Analyze("jfk-lax"), a.Analyze("JFK-LAX"))
}

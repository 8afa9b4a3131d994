// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package suggest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
	"github.com/tomtom215/skyroute/internal/models"
)

// minFuzzyQuery is the shortest query that falls back to fuzzy matching.
// Shorter queries match nearly every label.
const minFuzzyQuery = 3

// minWordLen is the shortest name word indexed on its own.
const minWordLen = 3

// Catalog supplies the airports to index.
type Catalog interface {
	AirportCatalog(ctx context.Context) ([]models.Airport, error)
}

// Match kinds, best first.
const (
	MatchIATA  = "iata"
	MatchICAO  = "icao"
	MatchName  = "name"
	MatchCity  = "city"
	MatchFuzzy = "fuzzy"
)

var matchRank = map[string]int{
	MatchIATA:  0,
	MatchICAO:  1,
	MatchName:  2,
	MatchCity:  3,
	MatchFuzzy: 4,
}

// Suggestion is one autocomplete result.
type Suggestion struct {
	AirportID int64  `json:"airport_id"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Match     string `json:"match"`
}

// entry links a trie key to an airport and the field it came from.
type entry struct {
	airport int
	kind    string
}

type snapshot struct {
	trie     *patricia.Trie
	airports []models.Airport
	labels   []string
}

// Index is an atomically swappable airport suggestion index.
type Index struct {
	catalog Catalog
	current atomic.Pointer[snapshot]
}

// NewIndex creates an empty index backed by catalog.
func NewIndex(catalog Catalog) *Index {
	return &Index{catalog: catalog}
}

// Rebuild reloads the catalog and replaces the index. It returns the number
// of airports indexed. On error the previous index stays in place.
func (ix *Index) Rebuild(ctx context.Context) (int, error) {
	start := time.Now()
	airports, err := ix.catalog.AirportCatalog(ctx)
	if err != nil {
		return 0, fmt.Errorf("load airport catalog: %w", err)
	}

	snap := build(airports)
	ix.current.Store(snap)
	metrics.RecordSuggestRebuild(len(airports))

	logging.Ctx(ctx).Debug().
		Int("airports", len(airports)).
		Dur("duration", time.Since(start)).
		Msg("Suggest index rebuilt")
	return len(airports), nil
}

// Len returns the number of indexed airports.
func (ix *Index) Len() int {
	snap := ix.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.airports)
}

func build(airports []models.Airport) *snapshot {
	snap := &snapshot{
		trie:     patricia.NewTrie(),
		airports: airports,
		labels:   make([]string, len(airports)),
	}

	for i := range airports {
		a := &airports[i]
		snap.add(a.IATA, i, MatchIATA)
		snap.add(a.ICAO, i, MatchICAO)
		snap.add(a.Name, i, MatchName)
		for _, word := range strings.Fields(a.Name) {
			if len(word) >= minWordLen {
				snap.add(word, i, MatchName)
			}
		}
		snap.add(a.City, i, MatchCity)

		snap.labels[i] = strings.ToLower(strings.Join(nonEmpty(a.Name, a.City, a.IATA), " "))
	}
	return snap
}

func (s *snapshot) add(key string, airport int, kind string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return
	}
	prefix := patricia.Prefix(key)
	var entries []entry
	if existing := s.trie.Get(prefix); existing != nil {
		entries = existing.([]entry)
	}
	for _, e := range entries {
		if e.airport == airport && e.kind == kind {
			return
		}
	}
	s.trie.Set(prefix, append(entries, entry{airport: airport, kind: kind}))
}

// Suggest returns up to limit airports matching q. Prefix matches come
// first, ordered by match kind then airport id; fuzzy matches fill the
// remainder in score order.
func (ix *Index) Suggest(q string, limit int) []Suggestion {
	results := []Suggestion{}
	snap := ix.current.Load()
	q = strings.ToLower(strings.TrimSpace(q))
	if snap == nil || q == "" || limit <= 0 {
		return results
	}

	best := make(map[int]string)
	_ = snap.trie.VisitSubtree(patricia.Prefix(q), func(_ patricia.Prefix, item patricia.Item) error {
		for _, e := range item.([]entry) {
			if cur, ok := best[e.airport]; !ok || matchRank[e.kind] < matchRank[cur] {
				best[e.airport] = e.kind
			}
		}
		return nil
	})

	ids := make([]int, 0, len(best))
	for idx := range best {
		ids = append(ids, idx)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := matchRank[best[ids[i]]], matchRank[best[ids[j]]]
		if ri != rj {
			return ri < rj
		}
		return snap.airports[ids[i]].ID < snap.airports[ids[j]].ID
	})

	for _, idx := range ids {
		if len(results) == limit {
			return results
		}
		results = append(results, toSuggestion(&snap.airports[idx], best[idx]))
	}

	if len(q) < minFuzzyQuery {
		return results
	}
	for _, m := range fuzzy.Find(q, snap.labels) {
		if len(results) == limit {
			break
		}
		if _, seen := best[m.Index]; seen {
			continue
		}
		results = append(results, toSuggestion(&snap.airports[m.Index], MatchFuzzy))
	}
	return results
}

func toSuggestion(a *models.Airport, kind string) Suggestion {
	return Suggestion{
		AirportID: a.ID,
		IATA:      a.IATA,
		ICAO:      a.ICAO,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Match:     kind,
	}
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func openMemoryBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProgressTrackers(t *testing.T) {
	t.Parallel()

	trackers := map[string]func(t *testing.T) ProgressTracker{
		"memory": func(_ *testing.T) ProgressTracker { return NewInMemoryProgress() },
		"badger": func(t *testing.T) ProgressTracker { return NewBadgerProgress(openMemoryBadger(t)) },
	}

	for name, newTracker := range trackers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			tracker := newTracker(t)

			loaded, err := tracker.Load(ctx)
			if err != nil || loaded != nil {
				t.Fatalf("Load() on empty tracker = %v, %v; want nil, nil", loaded, err)
			}

			start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			stats := &Stats{
				JobID:          "job-1",
				Airports:       7698,
				Airlines:       6162,
				Routes:         67240,
				Dropped:        423,
				Downloaded:     []string{RoutesFile},
				VocabularySize: 128,
				StartTime:      start,
				EndTime:        start.Add(9 * time.Second),
			}
			if err := tracker.Save(ctx, stats); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			// Mutating the caller's copy must not affect what was saved.
			stats.Downloaded[0] = "mutated"
			stats.Routes = 0

			loaded, err = tracker.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded.JobID != "job-1" || loaded.Routes != 67240 || loaded.Dropped != 423 {
				t.Errorf("loaded = %+v", loaded)
			}
			if len(loaded.Downloaded) != 1 || loaded.Downloaded[0] != RoutesFile {
				t.Errorf("Downloaded = %v", loaded.Downloaded)
			}
			if !loaded.StartTime.Equal(start) || loaded.Duration() != 9*time.Second {
				t.Errorf("times not preserved: %v %v", loaded.StartTime, loaded.Duration())
			}

			if err := tracker.Clear(ctx); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if err := tracker.Clear(ctx); err != nil {
				t.Fatalf("second Clear() error = %v", err)
			}
			if loaded, _ := tracker.Load(ctx); loaded != nil {
				t.Errorf("Load() after Clear = %+v", loaded)
			}
		})
	}
}

func TestBadgerProgress_CanceledContext(t *testing.T) {
	t.Parallel()

	p := NewBadgerProgress(openMemoryBadger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Save(ctx, &Stats{}); err == nil {
		t.Error("Save with canceled context should fail")
	}
	if _, err := p.Load(ctx); err == nil {
		t.Error("Load with canceled context should fail")
	}
}

func TestStats_ToSummary(t *testing.T) {
	t.Parallel()

	start := time.Now().Add(-time.Minute)

	tests := []struct {
		name      string
		stats     *Stats
		running   bool
		want      string
		wantError string
	}{
		{"nil is idle", nil, false, StatusIdle, ""},
		{"running", &Stats{StartTime: start}, true, StatusRunning, ""},
		{"completed", &Stats{StartTime: start, EndTime: start.Add(time.Second)}, false, StatusCompleted, ""},
		{"failed", &Stats{StartTime: start, EndTime: start.Add(time.Second), Error: "boom"}, false, StatusFailed, "boom"},
		{"interrupted", &Stats{StartTime: start}, false, StatusFailed, "ingest did not finish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.stats.ToSummary(tt.running)
			if got.Status != tt.want {
				t.Errorf("Status = %q, want %q", got.Status, tt.want)
			}
			if got.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", got.Error, tt.wantError)
			}
		})
	}
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const (
	// progressKey is the BadgerDB key for storing the latest ingest stats.
	progressKey = "ingest:openflights:progress"
)

// ProgressTracker persists the stats of the latest ingest run.
type ProgressTracker interface {
	// Save persists the current ingest stats.
	Save(ctx context.Context, stats *Stats) error

	// Load retrieves the last saved stats, or nil if none were saved.
	Load(ctx context.Context) (*Stats, error)

	// Clear removes saved stats.
	Clear(ctx context.Context) error
}

// BadgerProgress implements ProgressTracker using BadgerDB for persistence.
// The status endpoint can then report the last run across restarts.
type BadgerProgress struct {
	db *badger.DB
}

// NewBadgerProgress creates a new progress tracker using the provided BadgerDB instance.
func NewBadgerProgress(db *badger.DB) *BadgerProgress {
	return &BadgerProgress{db: db}
}

// Save persists the current ingest stats to BadgerDB.
func (p *BadgerProgress) Save(ctx context.Context, stats *Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(progressKey), data)
	})
}

// Load retrieves the last saved ingest stats from BadgerDB.
// Returns nil, nil if no progress has been saved.
func (p *BadgerProgress) Load(ctx context.Context) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var stats Stats
	found := false

	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(progressKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})

	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &stats, nil
}

// Clear removes saved progress from BadgerDB.
func (p *BadgerProgress) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(progressKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Already cleared
		}
		return err
	})
}

// InMemoryProgress implements ProgressTracker using in-memory storage.
// This is useful for testing or when persistence is not required.
type InMemoryProgress struct {
	mu    sync.RWMutex
	stats *Stats
}

// NewInMemoryProgress creates a new in-memory progress tracker.
func NewInMemoryProgress() *InMemoryProgress {
	return &InMemoryProgress{}
}

// Save stores the progress in memory.
func (p *InMemoryProgress) Save(_ context.Context, stats *Stats) error {
	statsCopy := copyStats(stats)
	p.mu.Lock()
	p.stats = statsCopy
	p.mu.Unlock()
	return nil
}

// Load retrieves the progress from memory.
func (p *InMemoryProgress) Load(_ context.Context) (*Stats, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stats == nil {
		return nil, nil
	}
	return copyStats(p.stats), nil
}

// Clear removes the stored progress.
func (p *InMemoryProgress) Clear(_ context.Context) error {
	p.mu.Lock()
	p.stats = nil
	p.mu.Unlock()
	return nil
}

func copyStats(s *Stats) *Stats {
	if s == nil {
		return nil
	}
	c := *s
	if s.Downloaded != nil {
		c.Downloaded = append([]string(nil), s.Downloaded...)
	}
	return &c
}

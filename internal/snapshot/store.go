// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package snapshot persists the fingerprint space fitted at ingest.
//
// Snapshots are msgpack-encoded into BadgerDB. Saving a new snapshot keeps the
// one it replaces under a second key so a bad ingest can be diagnosed against
// the space it overwrote.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomtom215/skyroute/internal/fingerprint"
)

const (
	currentKey  = "fingerprint:space:current"
	previousKey = "fingerprint:space:previous"
)

// Open opens a BadgerDB at path. An empty path opens an in-memory database.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db at %q: %w", path, err)
	}
	return db, nil
}

// Store reads and writes fingerprint space snapshots.
type Store struct {
	db *badger.DB
}

// NewStore creates a Store over an open BadgerDB. The caller owns db.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Save writes snap as the current snapshot.
func (s *Store) Save(ctx context.Context, snap fingerprint.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(currentKey))
		switch {
		case errors.Is(getErr, badger.ErrKeyNotFound):
		case getErr != nil:
			return getErr
		default:
			prev, copyErr := item.ValueCopy(nil)
			if copyErr != nil {
				return copyErr
			}
			if setErr := txn.Set([]byte(previousKey), prev); setErr != nil {
				return setErr
			}
		}
		return txn.Set([]byte(currentKey), data)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSpace returns the current snapshot, or nil, nil if none was saved.
func (s *Store) LoadSpace(ctx context.Context) (*fingerprint.Snapshot, error) {
	return s.load(ctx, currentKey)
}

// Previous returns the snapshot replaced by the last Save, or nil, nil.
func (s *Store) Previous(ctx context.Context) (*fingerprint.Snapshot, error) {
	return s.load(ctx, previousKey)
}

func (s *Store) load(ctx context.Context, key string) (*fingerprint.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		snap  fingerprint.Snapshot
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	if !found {
		return nil, nil
	}
	return &snap, nil
}

// Clear removes both the current and previous snapshots.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{currentKey, previousKey} {
			if err := txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return nil
	})
}

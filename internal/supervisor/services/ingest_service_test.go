// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/skyroute/internal/ingest"
	"github.com/tomtom215/skyroute/internal/logging"
)

type fakeImporter struct {
	calls atomic.Int32
	err   error
	ran   chan struct{}
}

func newFakeImporter(err error) *fakeImporter {
	return &fakeImporter{err: err, ran: make(chan struct{}, 16)}
}

func (f *fakeImporter) Import(ctx context.Context) (*ingest.Stats, error) {
	f.calls.Add(1)
	defer func() {
		select {
		case f.ran <- struct{}{}:
		default:
		}
	}()
	if f.err != nil {
		return nil, f.err
	}
	return &ingest.Stats{JobID: "job-1", Airports: 2, Airlines: 3, Routes: 4}, nil
}

func TestIngestService_StartupOnly(t *testing.T) {
	imp := newFakeImporter(nil)
	svc := NewIngestService(imp, IngestServiceConfig{OnStartup: true}, logging.NewTestLogger(&bytes.Buffer{}))

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want ErrDoNotRestart", err)
	}
	if imp.calls.Load() != 1 {
		t.Errorf("Import calls = %d, want 1", imp.calls.Load())
	}
}

func TestIngestService_NothingScheduled(t *testing.T) {
	imp := newFakeImporter(nil)
	svc := NewIngestService(imp, IngestServiceConfig{}, logging.NewTestLogger(&bytes.Buffer{}))

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want ErrDoNotRestart", err)
	}
	if imp.calls.Load() != 0 {
		t.Errorf("Import calls = %d, want 0", imp.calls.Load())
	}
}

func TestIngestService_FailureIsLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	imp := newFakeImporter(errors.New("routes.dat: no such file"))
	svc := NewIngestService(imp, IngestServiceConfig{OnStartup: true}, logging.NewTestLogger(&buf))

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want ErrDoNotRestart", err)
	}
	if !strings.Contains(buf.String(), "ingest failed") {
		t.Errorf("expected failure log, got %q", buf.String())
	}
}

func TestIngestService_AlreadyRunningSkipped(t *testing.T) {
	var buf bytes.Buffer
	imp := newFakeImporter(ingest.ErrAlreadyRunning)
	svc := NewIngestService(imp, IngestServiceConfig{OnStartup: true}, logging.NewTestLogger(&buf))

	_ = svc.Serve(context.Background())
	if !strings.Contains(buf.String(), "already running") {
		t.Errorf("expected skip log, got %q", buf.String())
	}
}

func TestIngestService_Refresh(t *testing.T) {
	imp := newFakeImporter(nil)
	svc := NewIngestService(imp, IngestServiceConfig{RefreshInterval: 10 * time.Millisecond}, logging.NewTestLogger(&bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-imp.ran:
		case <-time.After(2 * time.Second):
			t.Fatalf("scheduled ingest %d never ran", i+1)
		}
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestIngestService_DefaultsAndName(t *testing.T) {
	svc := NewIngestService(newFakeImporter(nil), IngestServiceConfig{}, logging.NewTestLogger(&bytes.Buffer{}))
	if svc.config.Timeout != 30*time.Minute {
		t.Errorf("default timeout = %v, want 30m", svc.config.Timeout)
	}
	if svc.String() != "ingest-service" {
		t.Errorf("String() = %q", svc.String())
	}
}

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/skyroute/internal/config"
)

type datasetServer struct {
	mu    sync.Mutex
	hits  map[string]int
	files map[string]string
}

func newDatasetServer(t *testing.T, files map[string]string) (*httptest.Server, *datasetServer) {
	t.Helper()
	ds := &datasetServer{hits: make(map[string]int), files: files}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/data/")
		ds.mu.Lock()
		ds.hits[name]++
		body, ok := ds.files[name]
		ds.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, ds
}

func (d *datasetServer) hitCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hits[name]
}

func fetcherConfig(baseURL string) *config.IngestConfig {
	return &config.IngestConfig{
		BaseURL:               baseURL,
		Download:              true,
		HTTPTimeout:           5 * time.Second,
		DownloadRatePerSecond: 100,
	}
}

func TestFetcher_EnsureFiles_DownloadsOnlyMissing(t *testing.T) {
	t.Parallel()

	srv, ds := newDatasetServer(t, map[string]string{
		AirportsFile: airportsFixture,
		AirlinesFile: airlinesFixture,
		RoutesFile:   routesFixture,
	})
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, AirlinesFile), []byte(airlinesFixture), 0o600); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(fetcherConfig(srv.URL + "/data/"))
	downloaded, err := f.EnsureFiles(context.Background(), dir, DataFiles)
	if err != nil {
		t.Fatalf("EnsureFiles: %v", err)
	}

	if len(downloaded) != 2 || downloaded[0] != AirportsFile || downloaded[1] != RoutesFile {
		t.Errorf("downloaded = %v, want [%s %s]", downloaded, AirportsFile, RoutesFile)
	}
	if ds.hitCount(AirlinesFile) != 0 {
		t.Error("existing file should not be downloaded")
	}

	got, err := os.ReadFile(filepath.Join(dir, RoutesFile))
	if err != nil {
		t.Fatalf("read routes: %v", err)
	}
	if string(got) != routesFixture {
		t.Error("downloaded routes.dat content mismatch")
	}
	if _, err := os.Stat(filepath.Join(dir, RoutesFile+".part")); !os.IsNotExist(err) {
		t.Error("temporary .part file should be renamed away")
	}

	// Second call finds everything present.
	downloaded, err = f.EnsureFiles(context.Background(), dir, DataFiles)
	if err != nil || len(downloaded) != 0 {
		t.Errorf("second EnsureFiles = %v, %v; want nothing downloaded", downloaded, err)
	}
}

func TestFetcher_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv, _ := newDatasetServer(t, map[string]string{})
	dir := t.TempDir()

	f := NewFetcher(fetcherConfig(srv.URL + "/data"))
	_, err := f.EnsureFiles(context.Background(), dir, []string{RoutesFile})
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "download routes.dat") || !strings.Contains(err.Error(), "404") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, RoutesFile)); !os.IsNotExist(statErr) {
		t.Error("failed download must not leave a file behind")
	}
}

func TestFetcher_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()

	srv, ds := newDatasetServer(t, map[string]string{})
	dir := t.TempDir()
	f := NewFetcher(fetcherConfig(srv.URL + "/data"))

	for i := 0; i < 3; i++ {
		if _, err := f.EnsureFiles(context.Background(), dir, []string{RoutesFile}); err == nil {
			t.Fatalf("attempt %d: expected error", i)
		}
	}
	if _, err := f.EnsureFiles(context.Background(), dir, []string{RoutesFile}); err == nil {
		t.Fatal("expected breaker rejection")
	}
	if got := ds.hitCount(RoutesFile); got != 3 {
		t.Errorf("server hits = %d, want 3 (fourth call rejected by open breaker)", got)
	}
}

func TestFetcher_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv, _ := newDatasetServer(t, map[string]string{RoutesFile: routesFixture})
	f := NewFetcher(fetcherConfig(srv.URL + "/data"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.EnsureFiles(ctx, t.TempDir(), []string{RoutesFile}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

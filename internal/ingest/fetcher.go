// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/skyroute/internal/config"
	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
)

// maxDownloadBytes caps a single dataset file. routes.dat is about 2.4MB.
const maxDownloadBytes = 64 << 20

// breakerName labels the download circuit breaker in logs and metrics.
const breakerName = "openflights-download"

// Fetcher downloads missing OpenFlights files into the data directory.
//
// Requests are paced by a token bucket and guarded by a circuit breaker so a
// failing mirror is not hammered by repeated admin-triggered ingests.
type Fetcher struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
}

// NewFetcher creates a Fetcher from ingest configuration.
// Circuit breaker configuration:
// - 1 trial request in half-open state
// - Opens after 3 consecutive failures
// - 1 minute before attempting recovery
func NewFetcher(cfg *config.IngestConfig) *Fetcher {
	perSecond := cfg.DownloadRatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Fetcher{
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		cb:      cb,
	}
}

// EnsureFiles downloads each named file that does not exist in dir.
// It returns the names that were downloaded.
func (f *Fetcher) EnsureFiles(ctx context.Context, dir string, names []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}

	var downloaded []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}

		if err := f.download(ctx, name, path); err != nil {
			return downloaded, err
		}
		downloaded = append(downloaded, name)
	}
	return downloaded, nil
}

func (f *Fetcher) download(ctx context.Context, name, path string) (err error) {
	defer func() { metrics.RecordDownload(name, err) }()

	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("download %s: %w", name, err)
	}

	url := f.baseURL + "/" + name
	body, err := f.cb.Execute(func() ([]byte, error) {
		return f.get(ctx, url)
	})
	if err != nil {
		result := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, result).Inc()
		return fmt.Errorf("download %s: %w", name, err)
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

	// Write to a temp file first so a partial download never looks complete
	tmp := path + ".part"
	if err := os.WriteFile(tmp, body, 0o640); err != nil {
		return fmt.Errorf("download %s: write: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("download %s: rename: %w", name, err)
	}

	logging.Info().Str("file", name).Int("bytes", len(body)).Msg("Downloaded dataset file")
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logging.Debug().Err(closeErr).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxDownloadBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, maxDownloadBytes)
	}
	return body, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

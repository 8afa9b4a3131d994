// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skyroute_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skyroute_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skyroute_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skyroute_recommend_duration_seconds",
			Help:    "Duration of similar-route recommendations in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"space_source"},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"result"}, // "ok", "not_found", "invalid", "error"
	)

	RecommendSkippedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyroute_recommend_skipped_records_total",
			Help: "Total number of stored fingerprints skipped because they could not be decoded",
		},
	)

	RecommendSpaceDrift = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyroute_recommend_space_drift_total",
			Help: "Total number of recommendations where the live corpus differed from the persisted space",
		},
	)

	RecommendCorpusSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skyroute_recommend_corpus_size",
			Help: "Number of routes read by the most recent recommendation",
		},
	)

	// Ingest Metrics
	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skyroute_ingest_duration_seconds",
			Help:    "Duration of dataset ingest runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	IngestRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_ingest_records_total",
			Help: "Total number of records written by ingest",
		},
		[]string{"kind"}, // "airports", "airlines", "routes"
	)

	IngestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_ingest_errors_total",
			Help: "Total number of ingest failures",
		},
		[]string{"stage"}, // "download", "parse", "fingerprint", "database", "snapshot"
	)

	IngestLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skyroute_ingest_last_success_timestamp",
			Help: "Unix timestamp of last successful ingest",
		},
	)

	DatasetDownloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_dataset_downloads_total",
			Help: "Total number of dataset file download attempts",
		},
		[]string{"file", "result"}, // result: "success", "failure"
	)

	// Suggest Index Metrics
	SuggestIndexSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skyroute_suggest_index_entries",
			Help: "Number of airports in the autocomplete index",
		},
	)

	SuggestIndexRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skyroute_suggest_index_rebuilds_total",
			Help: "Total number of autocomplete index rebuilds",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skyroute_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skyroute_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_events_published_total",
			Help: "Total number of dataset events published",
		},
		[]string{"topic"},
	)

	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyroute_events_processed_total",
			Help: "Total number of dataset events handled",
		},
		[]string{"topic", "result"}, // result: "success", "failure"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skyroute_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation call.
func RecordRecommendation(spaceSource, result string, corpusSize int, duration time.Duration) {
	RecommendRequests.WithLabelValues(result).Inc()
	if spaceSource != "" {
		RecommendDuration.WithLabelValues(spaceSource).Observe(duration.Seconds())
		RecommendCorpusSize.Set(float64(corpusSize))
	}
}

// RecordRecommendSkipped adds n undecodable fingerprints to the skip counter.
func RecordRecommendSkipped(n int) {
	if n > 0 {
		RecommendSkippedRecords.Add(float64(n))
	}
}

// RecordSpaceDrift counts a recommendation served while the corpus had
// drifted from the persisted space.
func RecordSpaceDrift() {
	RecommendSpaceDrift.Inc()
}

// RecordIngest records a completed or failed ingest run. The error stage is
// derived from the error text.
func RecordIngest(duration time.Duration, counts map[string]int, err error) {
	IngestDuration.Observe(duration.Seconds())
	for kind, n := range counts {
		IngestRecords.WithLabelValues(kind).Add(float64(n))
	}
	if err != nil {
		IngestErrors.WithLabelValues(ingestStage(err.Error())).Inc()
		return
	}
	IngestLastSuccess.Set(float64(time.Now().Unix()))
}

func ingestStage(msg string) string {
	switch {
	case strings.Contains(msg, "download"):
		return "download"
	case strings.Contains(msg, "parse"):
		return "parse"
	case strings.Contains(msg, "fingerprint"):
		return "fingerprint"
	case strings.Contains(msg, "snapshot"):
		return "snapshot"
	case strings.Contains(msg, "database"), strings.Contains(msg, "insert"):
		return "database"
	default:
		return "other"
	}
}

// RecordDownload counts a dataset file download attempt.
func RecordDownload(file string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	DatasetDownloads.WithLabelValues(file, result).Inc()
}

// RecordSuggestRebuild records an autocomplete index rebuild.
func RecordSuggestRebuild(entries int) {
	SuggestIndexRebuilds.Inc()
	SuggestIndexSize.Set(float64(entries))
}

// RecordEventPublished counts a published event.
func RecordEventPublished(topic string) {
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventProcessed counts a handled event.
func RecordEventProcessed(topic string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	EventsProcessed.WithLabelValues(topic, result).Inc()
}

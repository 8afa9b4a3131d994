// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Ingest    IngestConfig    `koanf:"ingest"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // Whether to preserve insertion order (default true)
	SkipIndexes            bool   `koanf:"skip_indexes"`             // Skip index creation (for fast test setup)
}

// IngestConfig holds OpenFlights dataset ingest settings
type IngestConfig struct {
	// DataDir holds airports.dat, airlines.dat and routes.dat.
	DataDir string `koanf:"data_dir"`

	// BaseURL is where missing files are downloaded from.
	BaseURL string `koanf:"base_url"`

	// Download fetches missing files from BaseURL before parsing.
	Download bool `koanf:"download"`

	// OnStartup runs an ingest when the server starts.
	OnStartup bool `koanf:"on_startup"`

	// BatchSize is the number of rows per insert transaction.
	BatchSize int `koanf:"batch_size"`

	// ProgressPath is the BadgerDB directory for ingest progress.
	// Empty keeps progress in memory.
	ProgressPath string `koanf:"progress_path"`

	HTTPTimeout           time.Duration `koanf:"http_timeout"`
	DownloadRatePerSecond float64       `koanf:"download_rate_per_second"`

	// RefreshInterval re-runs the ingest periodically. Zero disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// RecommendConfig holds similar-route recommendation settings
type RecommendConfig struct {
	// SpaceSource is "refit" or "persisted".
	SpaceSource string `koanf:"space_source"`

	// SnapshotPath is the BadgerDB directory for the fitted space snapshot.
	// Empty keeps the snapshot in memory for the life of the process.
	SnapshotPath string `koanf:"snapshot_path"`

	MaxFeatures      int `koanf:"max_features"`
	DirectRouteLimit int `koanf:"direct_route_limit"`
}

// CacheConfig holds analytics response cache settings
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`

	// File enables rotating file output in addition to stderr.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

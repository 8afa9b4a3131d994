// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package config provides centralized configuration management for Skyroute.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated once and is
read-only afterwards.

# Config File

The first existing file wins:
  - $CONFIG_PATH
  - config.yaml / config.yml in the working directory
  - /etc/skyroute/config.yaml / config.yml

# Environment Variables

Server:
  - HTTP_PORT: Listen port (default: 8001)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - ENVIRONMENT: development, staging or production

Database:
  - DUCKDB_PATH: Database file path (default: /data/skyroute.duckdb)
  - DUCKDB_MAX_MEMORY: Memory limit (default: 1GB)
  - DUCKDB_THREADS: Worker threads (default: NumCPU)

Ingest:
  - INGEST_DATA_DIR: Directory holding the .dat files (default: /data/openflights)
  - OPENFLIGHTS_BASE_URL: Download location for missing files
  - INGEST_DOWNLOAD: Download missing files (default: true)
  - INGEST_ON_STARTUP: Ingest when the server starts (default: false)
  - INGEST_BATCH_SIZE: Rows per insert transaction (default: 1000)
  - INGEST_PROGRESS_PATH: BadgerDB directory for ingest progress
  - INGEST_HTTP_TIMEOUT: Per-file download timeout (default: 60s)
  - INGEST_DOWNLOAD_RATE: Downloads per second (default: 2)
  - INGEST_REFRESH: Re-ingest interval, 0 disables (default: 0)

Recommendations:
  - RECOMMEND_SPACE_SOURCE: refit or persisted (default: refit)
  - RECOMMEND_SNAPSHOT_PATH: BadgerDB directory for the space snapshot
  - RECOMMEND_MAX_FEATURES: Fingerprint vocabulary cap (default: 128)
  - RECOMMEND_DIRECT_ROUTE_LIMIT: Direct route lookup cap (default: 100)

Cache and security:
  - CACHE_TTL: Analytics response cache TTL (default: 5m)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - LOG_FILE: Rotating log file (empty disables file output)
  - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS, LOG_COMPRESS

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
*/
package config

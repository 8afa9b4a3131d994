// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

// Package logging provides centralized zerolog-based logging for Skyroute.
//
// It provides:
//
//   - JSON output for production, console output for development
//   - Optional rotating file output via lumberjack
//   - Context-aware logging with request and correlation ID propagation
//   - An slog bridge for libraries that log through log/slog
//
// # Quick Start
//
//	import "github.com/tomtom215/skyroute/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//	defer logging.Close()
//
//	// Log messages
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Operation failed")
//
//	// With context (request ID)
//	logging.Ctx(ctx).Info().Str("source", src).Msg("Request processed")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//   - LOG_FILE: path of a rotating log file (default: unset, stdout only)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # Component Loggers
//
//	ingestLogger := logging.WithComponent("ingest")
//	ingestLogger.Info().Int("routes", n).Msg("Dataset ingested")
//
// # Rotating File Output
//
// When Config.File.Path is set the logger writes to both Output and a
// lumberjack-managed file through zerolog.MultiLevelWriter. The file is
// always JSON. Call Close at shutdown to flush it.
//
// # slog Adapter
//
// NewSlogLogger returns a *slog.Logger backed by the global zerolog logger.
// It feeds sutureslog and the Watermill logger adapter.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
package logging

// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/skyroute/internal/logging"
)

var (
	// ErrInvalidLimit is returned when a query limit is not positive.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrUnavailable marks errors caused by a lost or closed connection.
	ErrUnavailable = errors.New("database unavailable")
)

// wrapQueryError annotates a query failure with the operation name and marks
// connection failures with ErrUnavailable so callers can map them separately.
func wrapQueryError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}

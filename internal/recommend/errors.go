// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package recommend

import "errors"

// ErrNotFound is returned when there is no corpus to compare against.
var ErrNotFound = errors.New("no comparable routes found")

// ErrInvalidInput is returned for blank codes or a non-positive result count.
var ErrInvalidInput = errors.New("invalid recommendation input")

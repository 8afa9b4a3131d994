// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package recommend

import (
	"fmt"

	"github.com/tomtom215/skyroute/internal/fingerprint"
)

// SpaceSource selects which fingerprint space encodes the query.
type SpaceSource string

const (
	// SpaceRefit fits a new space over the live corpus on every call.
	SpaceRefit SpaceSource = "refit"

	// SpacePersisted uses the space snapshot written at ingest.
	SpacePersisted SpaceSource = "persisted"
)

// Config contains configuration for the recommendation service.
type Config struct {
	// SpaceSource selects refit or persisted query encoding.
	SpaceSource SpaceSource `json:"space_source"`

	// MaxFeatures caps the refit space. It must match the value used at
	// ingest or the refit space will never equal the stored one.
	MaxFeatures int `json:"max_features"`

	// DirectRouteLimit caps DirectRoutes results.
	DirectRouteLimit int `json:"direct_route_limit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SpaceSource:      SpaceRefit,
		MaxFeatures:      fingerprint.DefaultMaxFeatures,
		DirectRouteLimit: 100,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.SpaceSource {
	case SpaceRefit, SpacePersisted:
	default:
		return fmt.Errorf("space_source must be %q or %q, got %q", SpaceRefit, SpacePersisted, c.SpaceSource)
	}
	if c.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be positive, got %d", c.MaxFeatures)
	}
	if c.DirectRouteLimit < 1 {
		return fmt.Errorf("direct_route_limit must be positive, got %d", c.DirectRouteLimit)
	}
	return nil
}

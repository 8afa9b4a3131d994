// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package services

import (
	"context"
	"fmt"
)

// EventRouter is a message router that runs until its context ends.
// *eventprocessor.Router satisfies it.
type EventRouter interface {
	Run(ctx context.Context) error
}

// RouterFactory builds a fresh router with its handlers registered.
// A stopped router cannot be restarted, so each Serve call builds a new one.
type RouterFactory func() (EventRouter, error)

// EventRouterService runs the dataset event router under supervision.
type EventRouterService struct {
	factory RouterFactory
	name    string
}

// NewEventRouterService creates a new event router service.
//
// Example usage:
//
//	svc := services.NewEventRouterService(func() (services.EventRouter, error) {
//	    r, err := eventprocessor.NewRouter(nil, wmLogger)
//	    if err != nil {
//	        return nil, err
//	    }
//	    handlers.Register(r, bus)
//	    return r, nil
//	})
//	tree.AddMessagingService(svc)
func NewEventRouterService(factory RouterFactory) *EventRouterService {
	return &EventRouterService{
		factory: factory,
		name:    "event-router",
	}
}

// Serve implements suture.Service.
// It returns ctx.Err() on shutdown and an error if the router stops on its own,
// which lets the supervisor restart it with a freshly built router.
func (s *EventRouterService) Serve(ctx context.Context) error {
	router, err := s.factory()
	if err != nil {
		return fmt.Errorf("build event router: %w", err)
	}

	if err := router.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("event router failed: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("event router stopped unexpectedly")
}

// String implements fmt.Stringer for logging.
func (s *EventRouterService) String() string {
	return s.name
}

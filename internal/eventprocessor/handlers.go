// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package eventprocessor

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
)

// CacheInvalidator drops cached responses derived from the dataset.
type CacheInvalidator interface {
	Clear()
}

// SuggestRebuilder rebuilds the airport suggestion index from storage and
// returns the number of indexed airports.
type SuggestRebuilder interface {
	Rebuild(ctx context.Context) (int, error)
}

// DatasetHandlers reacts to dataset lifecycle events.
// Either dependency may be nil.
type DatasetHandlers struct {
	cache   CacheInvalidator
	suggest SuggestRebuilder
	events  *logging.EventLogger
}

// NewDatasetHandlers creates handlers for dataset events.
func NewDatasetHandlers(cache CacheInvalidator, suggest SuggestRebuilder) *DatasetHandlers {
	return &DatasetHandlers{
		cache:   cache,
		suggest: suggest,
		events:  logging.NewEventLogger(),
	}
}

// Register subscribes the handlers to both dataset topics.
func (h *DatasetHandlers) Register(r *Router, sub message.Subscriber) {
	r.AddConsumerHandler("dataset-cleared", TopicDatasetCleared, sub, h.HandleCleared)
	r.AddConsumerHandler("dataset-ingested", TopicDatasetIngested, sub, h.HandleIngested)
}

// HandleCleared drops cached analytics as soon as the tables are emptied,
// so no stale counts are served while the new dataset is written.
func (h *DatasetHandlers) HandleCleared(msg *message.Message) error {
	return h.process(msg, func(_ context.Context, _ *DatasetEvent) error {
		if h.cache != nil {
			h.cache.Clear()
		}
		return nil
	})
}

// HandleIngested drops cached analytics and rebuilds the suggestion index.
// A rebuild error is returned so the router retries the message.
func (h *DatasetHandlers) HandleIngested(msg *message.Message) error {
	return h.process(msg, func(ctx context.Context, event *DatasetEvent) error {
		if h.cache != nil {
			h.cache.Clear()
		}
		if h.suggest == nil {
			return nil
		}
		n, err := h.suggest.Rebuild(ctx)
		if err != nil {
			return fmt.Errorf("rebuild suggest index: %w", err)
		}
		h.events.InfoContext(ctx, "suggest index rebuilt",
			"job_id", event.JobID, "airports", n)
		return nil
	})
}

func (h *DatasetHandlers) process(msg *message.Message, fn func(context.Context, *DatasetEvent) error) error {
	start := time.Now()
	ctx := msg.Context()

	event, err := UnmarshalEvent(msg.Payload)
	if err != nil {
		// A malformed payload will never decode; ack it instead of retrying.
		h.events.LogEventFailed(ctx, msg.UUID, err)
		metrics.RecordEventProcessed(unknownTopic, err)
		return nil
	}
	h.events.LogEventReceived(ctx, event.EventID, event.Type, event.JobID)

	if err := fn(ctx, event); err != nil {
		h.events.LogEventFailed(ctx, event.EventID, err)
		metrics.RecordEventProcessed(event.Type, err)
		return err
	}

	h.events.LogEventProcessed(ctx, event.EventID, time.Since(start).Milliseconds())
	metrics.RecordEventProcessed(event.Type, nil)
	return nil
}

const unknownTopic = "unknown"

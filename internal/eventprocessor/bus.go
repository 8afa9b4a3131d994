// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package eventprocessor

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/skyroute/internal/logging"
	"github.com/tomtom215/skyroute/internal/metrics"
)

// Bus is an in-process Pub/Sub for dataset events.
// It implements message.Subscriber so it can be handed straight to the
// Router.
type Bus struct {
	pubsub *gochannel.GoChannel
	events *logging.EventLogger
}

// NewBus creates a gochannel-backed bus. A nil logger falls back to
// Watermill's std logger.
//
// The bus is persistent: events published before a handler subscribes
// are replayed to it. Ingest events are rare, so the retained set stays
// small.
func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NewStdLogger(false, false)
	}
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
			Persistent:          true,
		}, logger),
		events: logging.NewEventLogger(),
	}
}

// Publish encodes the event and publishes it on topic.
func (b *Bus) Publish(ctx context.Context, topic string, event *DatasetEvent) error {
	payload, err := MarshalEvent(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.Metadata.Set("event_type", event.Type)
	msg.Metadata.Set("job_id", event.JobID)
	msg.SetContext(ctx)

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	metrics.RecordEventPublished(topic)
	b.events.LogEventPublished(ctx, event.EventID, topic)
	return nil
}

// Subscribe implements message.Subscriber.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close closes the underlying Pub/Sub. Subscribers' channels are closed.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

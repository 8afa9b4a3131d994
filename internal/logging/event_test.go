// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestEventLogger_DomainMethods(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewEventLoggerWithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := ContextWithJobID(context.Background(), "job-42")

	tests := []struct {
		name  string
		log   func()
		wants []string
	}{
		{
			name:  "received",
			log:   func() { logger.LogEventReceived(ctx, "evt-1", "dataset.ingested", "job-42") },
			wants: []string{"event received", "evt-1", "dataset.ingested", "job-42"},
		},
		{
			name:  "processed",
			log:   func() { logger.LogEventProcessed(ctx, "evt-1", 12) },
			wants: []string{"event processed", `"duration_ms":12`},
		},
		{
			name:  "failed",
			log:   func() { logger.LogEventFailed(ctx, "evt-2", errors.New("rebuild failed")) },
			wants: []string{"event processing failed", "rebuild failed", `"level":"error"`},
		},
	}

	for _, tt := range tests {
		buf.Reset()
		tt.log()
		output := buf.String()
		for _, want := range tt.wants {
			if !strings.Contains(output, want) {
				t.Errorf("%s: expected %q in output: %s", tt.name, want, output)
			}
		}
		if !strings.Contains(output, `"component":"eventprocessor"`) {
			t.Errorf("%s: expected component field: %s", tt.name, output)
		}
	}
}

func TestEventLogger_PublishedIsDebug(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := NewEventLoggerWithLogger(zerolog.New(&buf))
	logger.LogEventPublished(context.Background(), "evt-3", "dataset.cleared")

	output := buf.String()
	if !strings.Contains(output, `"level":"debug"`) || !strings.Contains(output, "dataset.cleared") {
		t.Errorf("unexpected output: %s", output)
	}
}

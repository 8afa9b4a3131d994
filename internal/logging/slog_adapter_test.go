// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(zerolog.WarnLevel))

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug - 4, false},
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_HandleLevels(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug - 4, `"level":"trace"`},
		{slog.LevelDebug, `"level":"debug"`},
		{slog.LevelInfo, `"level":"info"`},
		{slog.LevelWarn, `"level":"warn"`},
		{slog.LevelError, `"level":"error"`},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel)))
		logger.Log(context.Background(), tt.level, "msg")
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("level %v: expected %s in %s", tt.level, tt.want, buf.String())
		}
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		With("service", "api-server").
		WithGroup("router").
		WithGroup("handler")

	logger.Info("handled",
		"name", "dataset-ingested",
		"retries", 2,
		"elapsed", 150*time.Millisecond,
		"ok", true,
		"err", errors.New("transient"),
		slog.Group("msg", "uuid", "abc"),
	)

	output := buf.String()
	for _, want := range []string{
		`"service":"api-server"`,
		`"router.handler.name":"dataset-ingested"`,
		`"router.handler.retries":2`,
		`"router.handler.ok":true`,
		`"router.handler.err":"transient"`,
		`"router.handler.msg.uuid":"abc"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(nil))
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestNewComponentSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	logger := NewComponentSlogLogger("eventbus", "warn")
	logger.Info("suppressed")
	logger.Warn("kept")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Errorf("info should be below the component floor: %s", output)
	}
	if !strings.Contains(output, "kept") || !strings.Contains(output, `"component":"eventbus"`) {
		t.Errorf("expected tagged warn line: %s", output)
	}
}

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	NewSlogLogger().Info("supervisor started", "name", "skyroute")

	if !strings.Contains(buf.String(), `"name":"skyroute"`) {
		t.Errorf("expected attribute in output: %s", buf.String())
	}
}

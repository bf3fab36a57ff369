// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newBufferedSlog(level zerolog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(level)
	return slog.New(NewSlogHandlerWithLogger(zl)), &buf
}

func TestSlogHandler_Handle(t *testing.T) {
	logger, buf := newBufferedSlog(zerolog.DebugLevel)

	logger.Warn("service restarted",
		"service", "catalog-health",
		"attempt", 2,
		"backoff", time.Second,
		"healthy", false,
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"service":"catalog-health"`,
		`"attempt":2`,
		`"healthy":false`,
		"service restarted",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("info enabled on a warn logger")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("error disabled on a warn logger")
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	logger, buf := newBufferedSlog(zerolog.DebugLevel)

	logger.With("tree", "moodshelf").WithGroup("svc").Info("started", "name", "http")

	out := buf.String()
	if !strings.Contains(out, `"svc.tree":"moodshelf"`) && !strings.Contains(out, `"tree":"moodshelf"`) {
		t.Errorf("pre-configured attr missing: %s", out)
	}
	if !strings.Contains(out, `"svc.name":"http"`) {
		t.Errorf("grouped key missing: %s", out)
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	h := NewSlogHandlerWithLogger(zerolog.Nop())
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestAddAttr_NestedGroup(t *testing.T) {
	logger, buf := newBufferedSlog(zerolog.DebugLevel)

	logger.Info("nested", slog.Group("pool", slog.Int("size", 4), slog.Bool("expanded", true)))

	out := buf.String()
	if !strings.Contains(out, `"pool.size":4`) || !strings.Contains(out, `"pool.expanded":true`) {
		t.Errorf("output = %s", out)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer and restores it afterwards.
func captureGlobal(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	prevLevel := GetLevel()
	cfg.Output = &buf
	Init(cfg)
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Caller {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestInit(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "debug", Format: "json"})

	Info().Str("kind", "book").Msg("served")
	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"kind":"book"`, `"message":"served"`, `"time":`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "warn"})

	Info().Msg("hidden")
	Debug().Msg("hidden too")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info/debug written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info", Format: "console"})
	Info().Msg("console line")
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("console format produced JSON: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestErr(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info"})
	Err(errors.New("catalog down")).Msg("fetch failed")
	if !strings.Contains(buf.String(), `"error":"catalog down"`) {
		t.Errorf("error field missing: %s", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t, Config{Level: "info"})
	l := WithComponent("pool_expander")
	l.Info().Msg("expanded")
	if !strings.Contains(buf.String(), `"component":"pool_expander"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestSetLevelString(t *testing.T) {
	prev := GetLevel()
	defer zerolog.SetGlobalLevel(prev)

	SetLevelString("error")
	if GetLevel() != zerolog.ErrorLevel {
		t.Errorf("GetLevel() = %v, want error", GetLevel())
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTestLogger(&buf)
	l.Warn().Msg("captured")
	if !strings.Contains(buf.String(), "captured") {
		t.Errorf("output = %s", buf.String())
	}
}

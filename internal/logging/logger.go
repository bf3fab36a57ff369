// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, encoding and destination of the process logger.
type Config struct {
	// Level: trace, debug, info, warn, error, fatal or disabled. Empty means info.
	Level string

	// Format: "json" (default) or "console" for human-readable output.
	Format string

	// Caller adds file:line to every record.
	Caller bool

	// Output defaults to os.Stderr when nil.
	Output io.Writer
}

// DefaultConfig is JSON at info level on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

var (
	mu   sync.RWMutex
	root zerolog.Logger
)

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"disabled": zerolog.Disabled,
}

//nolint:gochecknoinits // packages log before main calls Init
func init() {
	root = build(DefaultConfig())
}

// Init rebuilds the process logger from cfg. Calling it again reconfigures.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	root = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	zc := zerolog.New(out).With().Timestamp()
	if cfg.Caller {
		zc = zc.Caller()
	}
	return zc.Logger()
}

// parseLevel is case-insensitive; anything unrecognised is info.
func parseLevel(level string) zerolog.Level {
	if lvl, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return lvl
	}
	return zerolog.InfoLevel
}

func current() *zerolog.Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	return &l
}

// Logger returns a copy of the process logger.
func Logger() zerolog.Logger { return *current() }

// SetLogger swaps the process logger, typically for a test buffer.
//
//nolint:gocritic // zerolog.Logger is a value type
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// With starts a child context off the process logger.
func With() zerolog.Context { return current().With() }

// WithComponent tags a child logger with component=name.
//
//	expanderLog := logging.WithComponent("pool_expander")
func WithComponent(name string) zerolog.Logger {
	return With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return current().Debug() }

// Info opens an info record.
//
//	logging.Info().Str("addr", addr).Msg("listening")
func Info() *zerolog.Event { return current().Info() }

func Warn() *zerolog.Event  { return current().Warn() }
func Error() *zerolog.Event { return current().Error() }

// Fatal exits the process with status 1 once the record is written.
func Fatal() *zerolog.Event { return current().Fatal() }

// Err opens an error-level record with err attached (info level when err is nil).
func Err(err error) *zerolog.Event { return current().Err(err) }

// GetLevel reports the global zerolog level.
func GetLevel() zerolog.Level { return zerolog.GlobalLevel() }

// SetLevelString changes the global level at runtime.
func SetLevelString(level string) { zerolog.SetGlobalLevel(parseLevel(level)) }

// NewTestLogger writes JSON records with timestamps to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package logging provides the zerolog-based logging used across Moodshelf.

A single global logger is configured once from main with Init and then used
through the package-level helpers (Info, Warn, Error) or, inside request
handling, through Ctx which attaches the request and correlation IDs placed
in the context by the API middleware.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})
	logging.Info().Str("addr", addr).Msg("Server starting")
	logging.Ctx(ctx).Warn().Err(err).Int("cluster", id).Msg("Neighbor fetch failed")

Components that take an explicit zerolog.Logger (the pool expander, the
catalog engine) receive one from WithComponent.

# slog Bridge

SlogHandler adapts zerolog to log/slog for libraries that only accept an
*slog.Logger, such as the suture supervisor event hook.

Always terminate event chains with Msg or Send; an unterminated event is
never written.
*/
package logging

// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

// Package logging provides centralized zerolog-based structured logging for Indiepick.
//
// JSON output is the default (machine-parseable, suited to container logs); the
// console format is intended for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("port", 5000).Msg("Server starting")
//	logging.Error().Err(err).Msg("Catalog request failed")
//
//	// Request-scoped logging (request_id and correlation_id added automatically)
//	logging.Ctx(r.Context()).Warn().Str("dates", raw).Msg("Malformed date range replaced")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Suture Integration
//
// The supervisor tree logs through sutureslog, which expects *slog.Logger.
// NewSlogLogger returns an slog.Logger whose handler writes to the global
// zerolog logger, so supervisor events share the same output and format.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging

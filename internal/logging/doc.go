// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

// Package logging provides the process-wide zerolog logger for Waypoint.
//
// Every component logs through this package: the HTTP layer, the dataset
// loader, the supervisor tree (via the slog adapter) and the command line
// tools. Output is JSON by default and console-formatted for local use.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("city", city).Msg("ranking built")
//	logging.Ctx(ctx).Warn().Err(err).Msg("recommendation failed")
//
// # Configuration
//
// The config package maps these environment variables onto Config:
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Correlation
//
// The API middleware stores a request id in the request context. Ctx and
// CtxWith add it to every event:
//
//	logging.Ctx(ctx).Info().Int("user_id", id).Msg("served")
//	// {"level":"info","request_id":"...","user_id":3,"message":"served"}
//
// # Suture Integration
//
// suture v4 logs through slog. NewSlogLogger returns an *slog.Logger that
// writes to the zerolog backend, so supervisor events share the same output:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Dataset Events
//
// DatasetLogger emits the fixed set of events the loader produces (load
// started, load finished, load failed, table swapped) with consistent
// field names.
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// chain is never written.
package logging

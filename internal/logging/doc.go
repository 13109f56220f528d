// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package logging provides the process-wide zerolog logger for Reelcorr.
//
// The pipeline (ingest, statistics, matrix build, similarity queries) and the
// HTTP surface all log through this package so that output has one shape:
// JSON lines in production, colorized console lines for local runs.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("users", n).Msg("matrix built")
//	logging.Ctx(ctx).Debug().Str("title", t).Msg("similarity query")
//
// Components take a child logger rather than the global one:
//
//	rec, err := recommend.New(store, cfg, logging.WithComponent("recommend"))
//
// # Configuration
//
// Settings come from the logging section of the application config
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER). See FromSettings.
//
// # Request Context
//
// The API middleware stores a request ID on the request context. Ctx and
// CtxWith copy it, together with any correlation ID, onto every event:
//
//	logging.Ctx(r.Context()).Info().Msg("request served")
//	// {"level":"info","request_id":"5b0c...","message":"request served"}
//
// # Suture Integration
//
// NewSlogLogger returns a *slog.Logger backed by zerolog for libraries that
// only speak slog, such as sutureslog in the supervisor tree.
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex; Init and SetLogger may be called
// while other goroutines log.
package logging

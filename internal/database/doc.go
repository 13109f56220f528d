// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package database provides the DuckDB-backed rating loader.
//
// # Overview
//
// When DATA_LOADER=duckdb, both source files are parsed by DuckDB's read_csv
// table function and joined on item_id in SQL instead of in Go. The rows are
// then fed through ingest.Builder, so scale checks, duplicate handling and
// the load report match the csv loader exactly.
//
//   - database.go: connection lifecycle (open, pool sizing, ping, close)
//   - ratings_loader.go: RatingsLoader, an ingest.Loader over read_csv
//   - errors.go: close helpers and SQL literal quoting
//
// # Configuration
//
// An empty DUCKDB_PATH opens an in-memory database, which is the normal case
// since nothing is persisted. DUCKDB_MAX_MEMORY and DUCKDB_THREADS bound the
// engine. Extension autoloading is disabled; read_csv is built in.
//
// # Metrics
//
// Every query is timed with metrics.RecordDBQuery and each load is recorded
// with metrics.RecordIngest under the "duckdb" loader label.
package database

// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization and exposed at /metrics by the API router.

# Available Metrics

Ingest Metrics:
  - ingest_duration_seconds: Data load duration (histogram)
    Labels: loader (csv, duckdb)
  - ingest_records_total: Rating records read (counter)
    Labels: outcome (merged, unmatched)
  - ingest_errors_total: Failed loads (counter)
    Labels: loader

Recommender Metrics:
  - matrix_build_duration_seconds: Matrix construction time (histogram)
  - matrix_users, matrix_items: Current matrix shape (gauge)
  - matrix_density_ratio: Observed cell fraction (gauge)
  - similarity_queries_total: Similar-item queries (counter)
    Labels: outcome (ok, not_found, not_ready, cancelled, error)
  - similarity_query_duration_seconds: Query latency (histogram)
  - similarity_query_results: Rows returned per query (histogram)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counter)
    Labels: cache_type

# Usage Example

	start := time.Now()
	items, err := rec.FindSimilar(ctx, title, minRatings)
	metrics.RecordSimilarityQuery(time.Since(start), len(items), err)

# Thread Safety

Prometheus collectors are safe for concurrent use.
*/
package metrics

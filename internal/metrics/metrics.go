// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/reelcorr/internal/recommend"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Ingest Metrics
	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_duration_seconds",
			Help:    "Duration of rating data loads in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"loader"},
	)

	IngestRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_records_total",
			Help: "Total number of rating records read, by outcome",
		},
		[]string{"outcome"}, // "merged", "unmatched"
	)

	IngestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_errors_total",
			Help: "Total number of failed rating data loads",
		},
		[]string{"loader"},
	)

	// Recommender Metrics
	MatrixBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matrix_build_duration_seconds",
			Help:    "Duration of user x title matrix construction in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	MatrixUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matrix_users",
			Help: "Number of rows (users) in the current rating matrix",
		},
	)

	MatrixItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matrix_items",
			Help: "Number of columns (titles) in the current rating matrix",
		},
	)

	MatrixDensity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matrix_density_ratio",
			Help: "Fraction of observed cells in the current rating matrix",
		},
	)

	SimilarityQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "similarity_queries_total",
			Help: "Total number of similar-item queries, by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "not_ready", "cancelled", "error"
	)

	SimilarityDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_query_duration_seconds",
			Help:    "Duration of similar-item queries in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SimilarityResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_query_results",
			Help:    "Number of rows returned by similar-item queries",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordIngest records one data load.
func RecordIngest(loader string, duration time.Duration, merged, unmatched int, err error) {
	IngestDuration.WithLabelValues(loader).Observe(duration.Seconds())
	if err != nil {
		IngestErrors.WithLabelValues(loader).Inc()
		return
	}
	IngestRecords.WithLabelValues("merged").Add(float64(merged))
	IngestRecords.WithLabelValues("unmatched").Add(float64(unmatched))
}

// RecordMatrixBuild records matrix construction time and the resulting shape.
func RecordMatrixBuild(duration time.Duration, users, items int, density float64) {
	MatrixBuildDuration.Observe(duration.Seconds())
	MatrixUsers.Set(float64(users))
	MatrixItems.Set(float64(items))
	MatrixDensity.Set(density)
}

// RecordSimilarityQuery records a similar-item query and classifies its error.
func RecordSimilarityQuery(duration time.Duration, results int, err error) {
	SimilarityQueries.WithLabelValues(similarityOutcome(err)).Inc()
	if err != nil {
		return
	}
	SimilarityDuration.Observe(duration.Seconds())
	SimilarityResults.Observe(float64(results))
}

func similarityOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, recommend.ErrNotFound):
		return "not_found"
	case errors.Is(err, recommend.ErrState):
		return "not_ready"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a cache hit or miss for the given cache type.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

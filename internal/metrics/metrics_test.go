// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelcorr/internal/recommend"
)

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		duration  time.Duration
		err       error
	}{
		{"successful read", "SELECT", "ratings", 10 * time.Millisecond, nil},
		{"failed read", "SELECT", "titles", 2 * time.Millisecond, errors.New("IO Error: no such file")},
		{"long error", "SELECT", "ratings", time.Millisecond, errors.New(strings.Repeat("x", 120))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CollectAndCount(DBQueryErrors)
			RecordDBQuery(tt.operation, tt.table, tt.duration, tt.err)
			after := testutil.CollectAndCount(DBQueryErrors)
			if tt.err == nil && after != before {
				t.Errorf("error series changed on success: %d -> %d", before, after)
			}
		})
	}
}

func TestRecordDBQuery_ErrorTruncation(t *testing.T) {
	RecordDBQuery("SELECT", "truncation_test", time.Millisecond, errors.New(strings.Repeat("e", 80)))

	got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "truncation_test", strings.Repeat("e", 50)))
	if got != 1 {
		t.Errorf("truncated error series = %v, want 1", got)
	}
}

func TestRecordIngest(t *testing.T) {
	merged := testutil.ToFloat64(IngestRecords.WithLabelValues("merged"))
	unmatched := testutil.ToFloat64(IngestRecords.WithLabelValues("unmatched"))
	failures := testutil.ToFloat64(IngestErrors.WithLabelValues("csv"))

	RecordIngest("csv", 20*time.Millisecond, 100, 3, nil)
	RecordIngest("csv", time.Millisecond, 0, 0, errors.New("open u.data: no such file"))

	if got := testutil.ToFloat64(IngestRecords.WithLabelValues("merged")) - merged; got != 100 {
		t.Errorf("merged delta = %v, want 100", got)
	}
	if got := testutil.ToFloat64(IngestRecords.WithLabelValues("unmatched")) - unmatched; got != 3 {
		t.Errorf("unmatched delta = %v, want 3", got)
	}
	if got := testutil.ToFloat64(IngestErrors.WithLabelValues("csv")) - failures; got != 1 {
		t.Errorf("ingest error delta = %v, want 1", got)
	}
}

func TestRecordMatrixBuild(t *testing.T) {
	RecordMatrixBuild(50*time.Millisecond, 943, 1664, 0.063)

	if got := testutil.ToFloat64(MatrixUsers); got != 943 {
		t.Errorf("MatrixUsers = %v, want 943", got)
	}
	if got := testutil.ToFloat64(MatrixItems); got != 1664 {
		t.Errorf("MatrixItems = %v, want 1664", got)
	}
	if got := testutil.ToFloat64(MatrixDensity); got != 0.063 {
		t.Errorf("MatrixDensity = %v, want 0.063", got)
	}
}

func TestSimilarityOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{fmt.Errorf("%w: title %q", recommend.ErrNotFound, "x"), "not_found"},
		{fmt.Errorf("%w: matrix not initialized", recommend.ErrState), "not_ready"},
		{context.Canceled, "cancelled"},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), "cancelled"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := similarityOutcome(tt.err); got != tt.want {
				t.Errorf("similarityOutcome(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestRecordSimilarityQuery(t *testing.T) {
	before := testutil.ToFloat64(SimilarityQueries.WithLabelValues("not_found"))
	RecordSimilarityQuery(time.Millisecond, 0, recommend.ErrNotFound)
	if got := testutil.ToFloat64(SimilarityQueries.WithLabelValues("not_found")) - before; got != 1 {
		t.Errorf("not_found delta = %v, want 1", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("similar"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("similar"))

	RecordCacheLookup("similar", true)
	RecordCacheLookup("similar", false)
	RecordCacheLookup("similar", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("similar")) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("similar")) - misses; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestTrackActiveRequest_Concurrent(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			RecordAPIRequest("GET", "/api/v1/items/similar", "200", time.Millisecond)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("APIActiveRequests = %v, want %v", got, start)
	}
}

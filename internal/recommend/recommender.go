// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Recommender is one analysis session over a rating store. It owns the
// derived Statistics and Matrix; both must be built explicitly before
// FindSimilar can run. It is safe for concurrent use.
type Recommender struct {
	config *Config
	logger zerolog.Logger

	mu     sync.RWMutex
	store  *RatingStore
	stats  *Statistics
	matrix *Matrix

	// generation advances whenever the data FindSimilar reads is replaced.
	generation uint64
}

// correlated is the intermediate result for one candidate column.
type correlated struct {
	r       float64
	overlap int
	ok      bool
}

// New creates a Recommender over store. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(store *RatingStore, cfg *Config, logger zerolog.Logger) (*Recommender, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		store = NewRatingStore(nil)
	}

	return &Recommender{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		store:  store,
	}, nil
}

// Config returns a copy of the active configuration.
func (r *Recommender) Config() *Config {
	return r.config.Clone()
}

// Store returns the rating store of the session.
func (r *Recommender) Store() *RatingStore {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store
}

// CalculateRatings computes and caches the per-title statistics.
func (r *Recommender) CalculateRatings(ctx context.Context) (*Statistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	r.stats = ComputeStatistics(r.store)
	r.generation++

	r.logger.Info().
		Int("titles", r.stats.Len()).
		Int("ratings", r.store.Len()).
		Dur("duration", time.Since(start)).
		Msg("calculated rating statistics")

	return r.stats, nil
}

// CreateMatrix builds and caches the user x title matrix.
func (r *Recommender) CreateMatrix(ctx context.Context) (*Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	m, err := BuildMatrix(r.store)
	if err != nil {
		return nil, err
	}
	r.matrix = m
	r.generation++

	r.logger.Info().
		Int("users", m.Users()).
		Int("items", m.Items()).
		Float64("density", m.Density()).
		Dur("duration", time.Since(start)).
		Msg("created rating matrix")

	return m, nil
}

// Statistics returns the cached statistics, or ErrState if CalculateRatings
// has not run.
func (r *Recommender) Statistics() (*Statistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stats == nil {
		return nil, fmt.Errorf("%w: statistics not calculated", ErrState)
	}
	return r.stats, nil
}

// Matrix returns the cached matrix, or ErrState if CreateMatrix has not run.
func (r *Recommender) Matrix() (*Matrix, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.matrix == nil {
		return nil, fmt.Errorf("%w: matrix not initialized", ErrState)
	}
	return r.matrix, nil
}

// Generation identifies the data currently installed. It changes on every
// CalculateRatings, CreateMatrix, Reload and successful Rebuild, so results
// cached under one generation are never valid for another.
func (r *Recommender) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// Ready reports whether both derived artifacts are built.
func (r *Recommender) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats != nil && r.matrix != nil
}

// Reload replaces the rating store and drops the derived artifacts. Callers
// must run CalculateRatings and CreateMatrix again.
func (r *Recommender) Reload(store *RatingStore) {
	if store == nil {
		store = NewRatingStore(nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store = store
	r.stats = nil
	r.matrix = nil
	r.generation++

	r.logger.Info().Int("ratings", store.Len()).Msg("rating store reloaded")
}

// Rebuild derives statistics and the matrix for store without holding the
// session lock, then installs all three at once. Readers keep seeing the
// previous data until the swap; on error nothing changes.
func (r *Recommender) Rebuild(ctx context.Context, store *RatingStore) (*Matrix, error) {
	if store == nil {
		store = NewRatingStore(nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	stats := ComputeStatistics(store)
	m, err := BuildMatrix(store)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.store, r.stats, r.matrix = store, stats, m
	r.generation++
	r.mu.Unlock()

	r.logger.Info().
		Int("ratings", store.Len()).
		Int("titles", stats.Len()).
		Int("users", m.Users()).
		Float64("density", m.Density()).
		Dur("duration", time.Since(start)).
		Msg("rebuilt rating statistics and matrix")

	return m, nil
}

// FindSimilar ranks every other title by the Pearson correlation of its
// rating column with the target's, over users who rated both.
//
// Candidates whose correlation is undefined, whose overlap with the target is
// below the configured minimum, or whose rating count is not strictly greater
// than minRatings are dropped. The result is sorted by correlation descending;
// exact ties keep matrix column order. The target itself is never returned.
func (r *Recommender) FindSimilar(ctx context.Context, title string, minRatings int) ([]SimilarItem, error) {
	r.mu.RLock()
	m, stats := r.matrix, r.stats
	r.mu.RUnlock()

	if m == nil {
		return nil, fmt.Errorf("%w: matrix not initialized", ErrState)
	}
	if stats == nil {
		return nil, fmt.Errorf("%w: statistics not calculated", ErrState)
	}

	target, ok := m.Column(title)
	if !ok {
		return nil, fmt.Errorf("%w: title %q", ErrNotFound, title)
	}

	start := time.Now()
	scores, err := r.correlateAll(ctx, m, target)
	if err != nil {
		return nil, err
	}

	titles := m.Titles()
	results := make([]SimilarItem, 0, len(titles))
	for i, candidate := range titles {
		if candidate == title {
			continue
		}
		s := scores[i]
		if !s.ok || s.overlap < r.config.MinOverlap {
			continue
		}
		st, ok := stats.Get(candidate)
		if !ok || st.RatingCount <= minRatings {
			continue
		}
		results = append(results, SimilarItem{
			Title:       candidate,
			Correlation: s.r,
			RatingCount: st.RatingCount,
			Overlap:     s.overlap,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Correlation > results[j].Correlation
	})

	r.logger.Debug().
		Str("title", title).
		Int("min_ratings", minRatings).
		Int("candidates", len(titles)-1).
		Int("results", len(results)).
		Dur("duration", time.Since(start)).
		Msg("similar items computed")

	return results, nil
}

// correlateAll correlates target with every column of m. The returned slice
// is indexed by column.
func (r *Recommender) correlateAll(ctx context.Context, m *Matrix, target Vector) ([]correlated, error) {
	n := m.Items()
	scores := make([]correlated, n)

	workers := r.config.workerCount()
	if n < r.config.ParallelThreshold || workers < 2 {
		for i := 0; i < n; i++ {
			if i%64 == 0 && ContextCancelled(ctx) {
				return nil, ctx.Err()
			}
			scores[i] = correlate(target, m.columns[i])
		}
		return scores, nil
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				if ContextCancelled(ctx) {
					return
				}
				// Each worker owns a disjoint index range.
				scores[i] = correlate(target, m.columns[i])
			}
		}(start, end)
	}

	wg.Wait()

	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}
	return scores, nil
}

func correlate(target, candidate Vector) correlated {
	r, overlap, ok := Pearson(target, candidate)
	return correlated{r: r, overlap: overlap, ok: ok}
}

// ContextCancelled checks if the context has been cancelled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

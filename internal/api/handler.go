// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelcorr/internal/cache"
	"github.com/tomtom215/reelcorr/internal/config"
	"github.com/tomtom215/reelcorr/internal/models"
	"github.com/tomtom215/reelcorr/internal/recommend"
)

// Pinger is a dependency the readiness probe checks, such as the DuckDB
// connection used by the duckdb loader.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the recommender endpoints.
//
// Handler methods are split across files:
//   - handler.go: struct, constructor, cache control
//   - handlers_health.go: health, liveness and readiness probes
//   - handlers_items.go: similarity, item statistics and rankings
//   - handlers_stats.go: distribution and matrix summaries
type Handler struct {
	rec       *recommend.Recommender
	cfg       *config.Config
	db        Pinger
	similar   *cache.LRU[models.SimilarResponse]
	version   string
	startTime time.Time
	logger    zerolog.Logger
}

// similarCacheCapacity bounds the number of cached similarity lists.
const similarCacheCapacity = 512

// NewHandler creates a handler over rec. cfg supplies the query defaults
// (min_ratings, n, bins) and the cache TTL.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(rec *recommend.Recommender, cfg *config.Config, version string, logger zerolog.Logger) *Handler {
	return &Handler{
		rec:       rec,
		cfg:       cfg,
		similar:   cache.NewLRU[models.SimilarResponse](similarCacheCapacity, cfg.Server.CacheTTL),
		version:   version,
		startTime: time.Now(),
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// SetDatabase registers a connection for the readiness probe to ping.
func (h *Handler) SetDatabase(db Pinger) {
	h.db = db
}

// InvalidateCache drops every cached similarity list. Call it after the
// recommender is rebuilt from new data.
func (h *Handler) InvalidateCache() {
	stats := h.similar.Stats()
	n := h.similar.Purge()
	h.logger.Info().
		Int("entries", n).
		Float64("hit_rate", stats.HitRate()).
		Msg("similarity cache cleared")
}

// CacheStats returns the similarity cache counters.
func (h *Handler) CacheStats() cache.Stats {
	return h.similar.Stats()
}

// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelcorr/internal/cache"
	"github.com/tomtom215/reelcorr/internal/logging"
	"github.com/tomtom215/reelcorr/internal/metrics"
	"github.com/tomtom215/reelcorr/internal/models"
	"github.com/tomtom215/reelcorr/internal/recommend"
	"github.com/tomtom215/reelcorr/internal/report"
)

// similarCacheType labels similarity cache lookups in metrics.
const similarCacheType = "similar"

// similarCacheKey scopes a cached similarity list to the recommender data
// generation it was computed from. A lookup that races a rebuild stores its
// result under the old generation, which no later request asks for.
type similarCacheKey struct {
	Generation uint64         `json:"generation"`
	Request    SimilarRequest `json:"request"`
}

// SimilarItems returns the titles whose ratings correlate with the target,
// strongest first.
//
//	GET /api/v1/items/similar?title=Star%20Wars%20(1977)&min_ratings=100&limit=10
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	minRatings, perr := getIntParam(r, "min_ratings", h.cfg.Recommend.MinRatings)
	if perr != nil {
		respondAPIError(w, r, perr.apiError())
		return
	}
	limit, perr := getIntParam(r, "limit", 0)
	if perr != nil {
		respondAPIError(w, r, perr.apiError())
		return
	}

	req := SimilarRequest{
		Title:      r.URL.Query().Get("title"),
		MinRatings: minRatings,
		Limit:      limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, apiErr)
		return
	}

	key := cache.GenerateKey("similar", similarCacheKey{Generation: h.rec.Generation(), Request: req})
	if resp, ok := h.similar.Get(key); ok {
		metrics.RecordCacheLookup(similarCacheType, true)
		respondSuccess(w, r, resp, start, true)
		return
	}
	metrics.RecordCacheLookup(similarCacheType, false)

	items, err := h.rec.FindSimilar(r.Context(), req.Title, req.MinRatings)
	metrics.RecordSimilarityQuery(time.Since(start), len(items), err)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	resp := models.NewSimilarResponse(req.Title, req.MinRatings, items, req.Limit)
	h.similar.Set(key, resp)

	logging.Ctx(r.Context()).Debug().
		Str("title", req.Title).
		Int("min_ratings", req.MinRatings).
		Int("results", resp.Total).
		Dur("duration", time.Since(start)).
		Msg("similarity query served")

	respondSuccess(w, r, resp, start, false)
}

// ItemStats returns the mean rating and rating count of one title.
//
//	GET /api/v1/items/stats?title=Fargo%20(1996)
func (h *Handler) ItemStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ItemRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, apiErr)
		return
	}

	stats, err := h.rec.Statistics()
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	s, ok := stats.Get(req.Title)
	if !ok {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "title not found", map[string]interface{}{"title": req.Title})
		return
	}
	respondSuccess(w, r, models.FromItemStats(s), start, false)
}

// TopRated returns the n titles with the highest mean rating.
//
//	GET /api/v1/items/top-rated?n=5
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, "mean_rating", report.TopRated)
}

// MostRated returns the n titles with the most ratings.
//
//	GET /api/v1/items/most-rated?n=5
func (h *Handler) MostRated(w http.ResponseWriter, r *http.Request) {
	h.ranking(w, r, "rating_count", report.MostRated)
}

func (h *Handler) ranking(w http.ResponseWriter, r *http.Request, metric string,
	rank func(*recommend.Statistics, int) []report.RankedValue) {
	start := time.Now()

	n, perr := getIntParam(r, "n", h.cfg.Report.TopN)
	if perr != nil {
		respondAPIError(w, r, perr.apiError())
		return
	}
	req := TopNRequest{N: n}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, apiErr)
		return
	}

	stats, err := h.rec.Statistics()
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	respondSuccess(w, r, models.NewRankingResponse(metric, rank(stats, req.N)), start, false)
}

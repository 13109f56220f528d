// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelcorr/internal/models"
	"github.com/tomtom215/reelcorr/internal/report"
)

// Distribution returns the rating-count and mean-rating histograms with
// their summaries and the joint scatter points.
//
//	GET /api/v1/stats/distribution?bins=70
func (h *Handler) Distribution(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	bins, perr := getIntParam(r, "bins", h.cfg.Report.HistogramBins)
	if perr != nil {
		respondAPIError(w, r, perr.apiError())
		return
	}
	req := DistributionRequest{Bins: bins}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, apiErr)
		return
	}

	stats, err := h.rec.Statistics()
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	dist, err := report.Distributions(stats, req.Bins)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	respondSuccess(w, r, dist, start, false)
}

// MatrixInfo returns the shape and density of the user-by-title matrix.
//
//	GET /api/v1/stats/matrix
func (h *Handler) MatrixInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	m, err := h.rec.Matrix()
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	respondSuccess(w, r, models.FromMatrix(m), start, false)
}

// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package api

// SimilarRequest holds the validated query of /items/similar. Limit 0
// returns the full list. The field order fixes the cache key.
type SimilarRequest struct {
	Title      string `json:"title" validate:"required,title,max=512"`
	MinRatings int    `json:"min_ratings" validate:"min=0"`
	Limit      int    `json:"limit" validate:"min=0,max=100000"`
}

// ItemRequest holds the validated query of /items/stats.
type ItemRequest struct {
	Title string `validate:"required,title,max=512"`
}

// TopNRequest holds the validated query of the ranking endpoints.
type TopNRequest struct {
	N int `validate:"min=1,max=10000"`
}

// DistributionRequest holds the validated query of /stats/distribution.
type DistributionRequest struct {
	Bins int `validate:"min=1,max=1000"`
}

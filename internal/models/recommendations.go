// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package models

import (
	"github.com/tomtom215/reelcorr/internal/recommend"
	"github.com/tomtom215/reelcorr/internal/report"
)

// SimilarItem is one ranked neighbour of the target title.
type SimilarItem struct {
	Title       string  `json:"title"`
	Correlation float64 `json:"correlation"`
	RatingCount int     `json:"rating_count"`
	Overlap     int     `json:"overlap"`
}

// SimilarResponse is the similarity list for one target.
type SimilarResponse struct {
	Target     string        `json:"target"`
	MinRatings int           `json:"min_ratings"`
	Total      int           `json:"total"`
	Results    []SimilarItem `json:"results"`
}

// NewSimilarResponse converts a FindSimilar result, keeping at most limit
// rows. Total is the length before truncation.
func NewSimilarResponse(target string, minRatings int, items []recommend.SimilarItem, limit int) SimilarResponse {
	n := len(items)
	if limit > 0 && limit < n {
		n = limit
	}
	results := make([]SimilarItem, n)
	for i := 0; i < n; i++ {
		results[i] = SimilarItem{
			Title:       items[i].Title,
			Correlation: items[i].Correlation,
			RatingCount: items[i].RatingCount,
			Overlap:     items[i].Overlap,
		}
	}
	return SimilarResponse{Target: target, MinRatings: minRatings, Total: len(items), Results: results}
}

// ItemStatsResponse holds the per-title statistics.
type ItemStatsResponse struct {
	Title       string  `json:"title"`
	MeanRating  float64 `json:"mean_rating"`
	RatingCount int     `json:"rating_count"`
}

// FromItemStats converts recommend.ItemStats.
func FromItemStats(s recommend.ItemStats) ItemStatsResponse {
	return ItemStatsResponse{Title: s.Title, MeanRating: s.MeanRating, RatingCount: s.RatingCount}
}

// RankedItem is one row of a top-N table.
type RankedItem struct {
	Rank  int     `json:"rank"`
	Title string  `json:"title"`
	Value float64 `json:"value"`
}

// RankingResponse is a top-N table ranked by Metric.
type RankingResponse struct {
	Metric string       `json:"metric"`
	Items  []RankedItem `json:"items"`
}

// NewRankingResponse converts a report ranking, numbering rows from 1.
func NewRankingResponse(metric string, rows []report.RankedValue) RankingResponse {
	items := make([]RankedItem, len(rows))
	for i, row := range rows {
		items[i] = RankedItem{Rank: i + 1, Title: row.Title, Value: row.Value}
	}
	return RankingResponse{Metric: metric, Items: items}
}

// MatrixInfo describes the built user-by-title matrix.
type MatrixInfo struct {
	Users   int     `json:"users"`
	Items   int     `json:"items"`
	Cells   int     `json:"cells"`
	Density float64 `json:"density"`
}

// FromMatrix summarizes m.
func FromMatrix(m *recommend.Matrix) MatrixInfo {
	return MatrixInfo{Users: m.Users(), Items: m.Items(), Cells: m.Cells(), Density: m.Density()}
}

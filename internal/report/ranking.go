// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package report derives rankings, distributions and printable tables from
// per-title rating statistics.
package report

import (
	"sort"

	"github.com/tomtom215/reelcorr/internal/recommend"
)

// DefaultTopN is the number of rows shown by the ranking reports.
const DefaultTopN = 5

// RankedValue is one row of a ranking.
type RankedValue struct {
	Title string  `json:"title"`
	Value float64 `json:"value"`
}

// TopRated returns the n titles with the highest mean rating.
func TopRated(stats *recommend.Statistics, n int) []RankedValue {
	return rank(stats, n, func(s recommend.ItemStats) float64 { return s.MeanRating })
}

// MostRated returns the n titles with the most ratings.
func MostRated(stats *recommend.Statistics, n int) []RankedValue {
	return rank(stats, n, func(s recommend.ItemStats) float64 { return float64(s.RatingCount) })
}

// rank sorts the statistics by value descending. Items arrive ordered by
// title, so ties are broken alphabetically. n <= 0 yields an empty ranking
// and n larger than the number of titles yields all of them.
func rank(stats *recommend.Statistics, n int, value func(recommend.ItemStats) float64) []RankedValue {
	if stats == nil || n <= 0 {
		return []RankedValue{}
	}

	items := stats.Items()
	rows := make([]RankedValue, len(items))
	for i, it := range items {
		rows[i] = RankedValue{Title: it.Title, Value: value(it)}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})

	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}

// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package report

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/reelcorr/internal/recommend"
)

// DefaultBins matches the bin count of the classic rating-count histogram.
const DefaultBins = 70

// Histogram is a binned distribution. Dividers has len(Counts)+1 entries;
// bin i covers [Dividers[i], Dividers[i+1]).
type Histogram struct {
	Dividers []float64 `json:"dividers"`
	Counts   []float64 `json:"counts"`
}

// Summary holds descriptive statistics of one variable.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Point is one title in the joint mean-rating / rating-count scatter.
type Point struct {
	Title       string  `json:"title"`
	MeanRating  float64 `json:"mean_rating"`
	RatingCount int     `json:"rating_count"`
}

// Distribution is the data behind the rating-count histogram, the
// mean-rating histogram and their joint scatter.
type Distribution struct {
	Bins         int       `json:"bins"`
	RatingCounts Histogram `json:"rating_counts"`
	MeanRatings  Histogram `json:"mean_ratings"`
	CountSummary Summary   `json:"count_summary"`
	MeanSummary  Summary   `json:"mean_summary"`
	Joint        []Point   `json:"joint"`
}

// Distributions bins the rating counts and mean ratings of every title.
func Distributions(stats *recommend.Statistics, bins int) (*Distribution, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: bins must be positive, got %d", recommend.ErrInput, bins)
	}

	var items []recommend.ItemStats
	if stats != nil {
		items = stats.Items()
	}

	counts := make([]float64, len(items))
	means := make([]float64, len(items))
	joint := make([]Point, len(items))
	for i, it := range items {
		counts[i] = float64(it.RatingCount)
		means[i] = it.MeanRating
		joint[i] = Point{Title: it.Title, MeanRating: it.MeanRating, RatingCount: it.RatingCount}
	}

	return &Distribution{
		Bins:         bins,
		RatingCounts: histogram(counts, bins),
		MeanRatings:  histogram(means, bins),
		CountSummary: summarize(counts),
		MeanSummary:  summarize(means),
		Joint:        joint,
	}, nil
}

// histogram bins x into equal-width bins spanning its range. x is sorted in place.
func histogram(x []float64, bins int) Histogram {
	if len(x) == 0 {
		return Histogram{Dividers: []float64{}, Counts: []float64{}}
	}

	sort.Float64s(x)
	lo, hi := x[0], x[len(x)-1]
	if lo == hi {
		hi = lo + 1
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram bins are half-open; nudge the last edge so the maximum is counted.
	dividers[bins] = math.Nextafter(dividers[bins], math.Inf(1))

	return Histogram{
		Dividers: dividers,
		Counts:   stat.Histogram(nil, dividers, x, nil),
	}
}

func summarize(x []float64) Summary {
	if len(x) == 0 {
		return Summary{}
	}

	s := Summary{N: len(x), Min: floats.Min(x), Max: floats.Max(x)}
	if len(x) == 1 {
		s.Mean = x[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	return s
}

// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import (
	"fmt"
	"runtime"
)

// DefaultMinRatings is the rating-count threshold used when callers have no
// preference. Candidates need strictly more ratings than this to be returned.
const DefaultMinRatings = 100

// Config contains the tuning parameters of a Recommender.
type Config struct {
	// MinRatings is the default rating-count threshold for FindSimilar.
	MinRatings int `json:"min_ratings"`

	// MinOverlap is the minimum number of shared raters a pair needs before
	// its correlation is considered. Values below 2 are rejected since a
	// single shared rater never yields a defined correlation.
	MinOverlap int `json:"min_overlap"`

	// Workers bounds the number of goroutines correlating columns.
	// Zero means runtime.NumCPU().
	Workers int `json:"workers"`

	// ParallelThreshold is the column count below which correlation runs
	// on the calling goroutine.
	ParallelThreshold int `json:"parallel_threshold"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MinRatings:        DefaultMinRatings,
		MinOverlap:        2,
		Workers:           0,
		ParallelThreshold: 256,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MinRatings < 0 {
		return fmt.Errorf("min_ratings must be non-negative, got %d", c.MinRatings)
	}
	if c.MinOverlap < 2 {
		return fmt.Errorf("min_overlap must be at least 2, got %d", c.MinOverlap)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.ParallelThreshold < 0 {
		return fmt.Errorf("parallel_threshold must be non-negative, got %d", c.ParallelThreshold)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// workerCount resolves the effective number of correlation workers.
func (c *Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

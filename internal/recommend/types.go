// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import "errors"

// Error taxonomy. Callers should match with errors.Is; the returned errors wrap
// these sentinels with the offending title or artifact.
var (
	// ErrInput indicates empty or malformed input to matrix construction.
	ErrInput = errors.New("invalid input")

	// ErrState indicates an operation ran before a required artifact was built.
	ErrState = errors.New("invalid state")

	// ErrNotFound indicates a requested title is not among the known items.
	ErrNotFound = errors.New("not found")
)

// Rating is one record of the merged long-form rating table.
type Rating struct {
	// UserID identifies the rater.
	UserID int `json:"user_id"`

	// ItemID identifies the rated item in the source data.
	ItemID int `json:"item_id"`

	// Rating is the score on the source scale (1-5 for MovieLens).
	Rating float64 `json:"rating"`

	// Title is the resolved item title. All aggregation is keyed by title.
	Title string `json:"title"`

	// Timestamp is the source epoch timestamp. Unused by the computations.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// ItemStats holds the descriptive statistics for one title.
type ItemStats struct {
	// Title is the item title.
	Title string `json:"title"`

	// MeanRating is the arithmetic mean of all ratings recorded for the title.
	MeanRating float64 `json:"mean_rating"`

	// RatingCount is the number of rating records for the title.
	RatingCount int `json:"rating_count"`
}

// SimilarItem is one row of a similarity result.
type SimilarItem struct {
	// Title is the candidate item title.
	Title string `json:"title"`

	// Correlation is the Pearson coefficient against the target, in [-1, 1].
	Correlation float64 `json:"correlation"`

	// RatingCount is the candidate's rating count over the whole store,
	// not just the users shared with the target.
	RatingCount int `json:"rating_count"`

	// Overlap is the number of users who rated both the target and the candidate.
	Overlap int `json:"overlap"`
}

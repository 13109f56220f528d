// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package recommend implements item-to-item similarity over explicit user ratings.
//
// # Architecture
//
// The package is organized around three derived artifacts, all built from a
// RatingStore (the merged long-form table of user, item, rating and title):
//
//   - Statistics: per-title mean rating and rating count
//   - Matrix: a sparse user x title rating matrix where unrated cells are absent
//   - Similar items: Pearson correlation of one title's column against every other
//     column, restricted to users who rated both, filtered by rating count
//
// # Missing Data
//
// Absent cells are never treated as zero. Each matrix column stores only the
// observed ratings, ordered by row, and correlation is computed over the overlap
// of two columns. Pairs with fewer than two shared raters, or with a constant
// rating vector on either side, have no defined correlation and are dropped.
//
// # Usage
//
//	rec, err := recommend.New(store, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	if _, err := rec.CalculateRatings(ctx); err != nil {
//	    return err
//	}
//	if _, err := rec.CreateMatrix(ctx); err != nil {
//	    return err
//	}
//	similar, err := rec.FindSimilar(ctx, "Star Wars (1977)", 100)
//
// # Thread Safety
//
// Matrix and Statistics are immutable once built. The Recommender guards its
// derived caches with a RWMutex so queries can run concurrently with each other;
// CreateMatrix, CalculateRatings and Reload take the write lock.
//
// This package has no dependencies on other internal packages.
package recommend

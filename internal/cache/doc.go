// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package cache holds query results between recomputations.
//
// LRU is a bounded least-recently-used map with a per-entry time-to-live. The
// API keeps similarity lists in one, keyed by GenerateKey over the request
// parameters, and purges it whenever the recommender reloads its data.
//
// Expired entries are dropped lazily on Get or pushed out by newer entries;
// there is no background goroutine to stop.
package cache

// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

/*
Package models defines the JSON shapes served by the Reelcorr HTTP API.

Every endpoint wraps its payload in APIResponse. Failures carry an APIError
with a machine-readable code:

	VALIDATION_ERROR   request parameters failed validation (400)
	NOT_FOUND          the requested title is not in the matrix (404)
	NOT_READY          statistics or matrix not built yet (503)
	INTERNAL_ERROR     anything else (500)

Domain payloads:

  - SimilarResponse: similarity list for one target title
  - ItemStatsResponse: mean rating and rating count of one title
  - RankingResponse: top-N titles by mean rating or by rating count
  - MatrixInfo: shape and density of the user-by-title matrix
  - HealthStatus: liveness and readiness detail

The recommend and report packages stay free of transport concerns; the From*
constructors here translate their values.
*/
package models

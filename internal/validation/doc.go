// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package validation wraps go-playground/validator v10 for the HTTP API.
//
// A single validator instance is built on first use and cached, since the
// library memoizes struct metadata per instance. Besides the built-in tags it
// registers:
//
//   - title: non-blank string with no control characters
//
// Failures come back as *RequestValidationError, which converts to the
// VALIDATION_ERROR payload the API returns with status 400:
//
//	type SimilarRequest struct {
//	    Title      string `validate:"required,title,max=512"`
//	    MinRatings int    `validate:"min=0,max=1000000"`
//	    Limit      int    `validate:"min=1,max=1000"`
//	}
package validation

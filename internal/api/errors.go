// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelcorr/internal/logging"
	"github.com/tomtom215/reelcorr/internal/recommend"
	"github.com/tomtom215/reelcorr/internal/validation"
)

// Error codes for API responses.
const (
	ErrCodeValidation       = validation.ErrorCode
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeNotReady         = "NOT_READY"
	ErrCodeCancelled        = "REQUEST_CANCELLED"
	ErrCodeRateLimited      = "TOO_MANY_REQUESTS"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// statusForError maps recommender errors to an HTTP status and error code.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrInput):
		return http.StatusBadRequest, ErrCodeValidation
	case errors.Is(err, recommend.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, recommend.ErrState):
		return http.StatusServiceUnavailable, ErrCodeNotReady
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrCodeCancelled
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}

// respondRecommendError writes the response for an error returned by the
// recommender. Internal errors are logged; their text is not sent.
func respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.CtxErr(r.Context(), err).Str("path", r.URL.Path).Msg("request failed")
		message = "Internal server error"
	}
	respondError(w, r, status, code, message, nil)
}

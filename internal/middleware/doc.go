// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

/*
Package middleware provides the HTTP middleware the API router stacks in
front of its handlers.

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)     // X-Request-ID and logging context
	r.Use(middleware.AccessLog)     // one zerolog line per request
	r.Use(middleware.Prometheus)    // reelcorr_api_* metrics
	r.Use(middleware.Compression)   // gzip when the client accepts it

Prometheus labels requests by their chi route pattern, for example
/api/v1/items/{title}/similar, rather than the raw path, so a title in the
URL does not create a new time series.
*/
package middleware

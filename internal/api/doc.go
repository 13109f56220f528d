// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

/*
Package api serves the recommender over HTTP using the chi router.

Endpoints:

	GET /api/v1/health                 status, readiness flags, uptime
	GET /api/v1/health/live            always 200 while the process runs
	GET /api/v1/health/ready           200 once statistics and matrix are built, else 503
	GET /api/v1/items/similar          ?title=&min_ratings=100&limit=0
	GET /api/v1/items/stats            ?title=
	GET /api/v1/items/top-rated        ?n=5
	GET /api/v1/items/most-rated       ?n=5
	GET /api/v1/stats/distribution     ?bins=70
	GET /api/v1/stats/matrix
	GET /metrics                       Prometheus exposition

Every JSON response uses the models.APIResponse envelope. Recommender errors
map to status codes:

	recommend.ErrInput     400 VALIDATION_ERROR
	recommend.ErrNotFound  404 NOT_FOUND
	recommend.ErrState     503 NOT_READY

Similarity lists are cached per (title, min_ratings, limit) in a TTL-bounded
LRU. Call Handler.InvalidateCache after the recommender reloads its data.

The middleware stack is request ID, real IP, panic recovery, CORS, access
logging, Prometheus instrumentation and gzip; the /api/v1 group is also rate
limited per client IP with httprate.
*/
package api

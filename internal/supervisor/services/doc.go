// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

/*
Package services adapts Reelcorr components to suture's Serve(ctx) model.

HTTPServerService wraps an *http.Server: ListenAndServe runs in a goroutine
and context cancellation triggers Shutdown with a bounded timeout.

RebuildService keeps the similarity matrix fresh while the API is serving.
It reloads the rating files and rebuilds statistics and the matrix whenever
its trigger channel fires (SIGHUP in cmd/reelcorr) or its interval elapses.
A failed rebuild is logged and the previous matrix keeps serving.

Each service implements fmt.Stringer so suture can name it in log events.
*/
package services

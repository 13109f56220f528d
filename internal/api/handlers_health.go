// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reelcorr/internal/models"
)

// pingTimeout bounds the readiness database check.
const pingTimeout = 2 * time.Second

// Health reports readiness flags and uptime. It always returns 200; status
// is "healthy" or "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus(r.Context())
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive returns 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady returns 200 once statistics and the matrix are built and the
// database, if any, answers a ping. Otherwise it returns 503.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus(r.Context())

	status, code := "ready", http.StatusOK
	if health.Status != "healthy" {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	respondJSON(w, r, code, &models.APIResponse{
		Status:   status,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

func (h *Handler) healthStatus(ctx context.Context) models.HealthStatus {
	_, statsErr := h.rec.Statistics()
	_, matrixErr := h.rec.Matrix()

	health := models.HealthStatus{
		Status:          "healthy",
		Version:         h.version,
		StatisticsReady: statsErr == nil,
		MatrixReady:     matrixErr == nil,
		Uptime:          time.Since(h.startTime).Seconds(),
	}

	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		connected := h.db.Ping(pingCtx) == nil
		health.DatabaseConnected = &connected
		if !connected {
			health.Status = "degraded"
		}
	}
	if !health.StatisticsReady || !health.MatrixReady {
		health.Status = "degraded"
	}
	return health
}

// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/indiepick/internal/models"
)

// Health status values
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// HealthLive handles GET /api/health/live.
// It reports process liveness only and never touches the catalog.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:    StatusOK,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now(),
	})
}

// HealthReady handles GET /api/health/ready.
// The service is not ready while the catalog circuit breaker is open.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	resp := &models.HealthResponse{
		Status:    StatusOK,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now(),
	}

	status := http.StatusOK
	if h.breaker != nil {
		resp.CircuitBreaker = h.breaker.StateString()
		if resp.CircuitBreaker == "open" {
			resp.Status = StatusDegraded
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, resp)
}

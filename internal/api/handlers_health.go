// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the readiness probe payload.
type HealthStatus struct {
	Status         string            `json:"status"`
	CatalogMovies  int               `json:"catalog_movies"`
	ActiveSessions int               `json:"active_sessions"`
	Uptime         float64           `json:"uptime_seconds"`
	Failures       map[string]string `json:"failures,omitempty"`
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 with the failing checks until the catalog is loaded and every
// registered check passes.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := HealthStatus{
		Status: "ready",
		Uptime: time.Since(h.startTime).Seconds(),
	}
	if h.catalog != nil {
		status.CatalogMovies = h.catalog.Len()
	}
	if h.sessions != nil {
		status.ActiveSessions = h.sessions.Len()
	}

	if failures := h.readiness(); len(failures) > 0 {
		status.Status = "not_ready"
		status.Failures = failures
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service is not ready", status)
		return
	}

	rw.Success(status)
}

// Stats handles GET /api/v1/stats with the aggregated swipe statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.stats == nil {
		rw.ServiceUnavailable("Statistics are not enabled")
		return
	}
	rw.Success(h.stats.Snapshot())
}

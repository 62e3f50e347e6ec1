// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"sync"
	"time"

	"github.com/tomtom215/cinemaswipe/internal/catalog"
	"github.com/tomtom215/cinemaswipe/internal/events"
	"github.com/tomtom215/cinemaswipe/internal/models"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
)

// StatsProvider exposes aggregated swipe statistics.
type StatsProvider interface {
	Snapshot() events.Stats
}

// ReadinessCheck reports nil when a dependency can serve traffic.
type ReadinessCheck func() error

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_movies.go: onboarding options and catalog browsing
//   - handlers_sessions.go: swipe sessions
type Handler struct {
	catalog   *catalog.Catalog
	scorer    *recommend.Scorer
	sessions  *session.Manager
	stats     StatsProvider
	options   models.OnboardingOptions
	startTime time.Time

	mu     sync.RWMutex
	checks map[string]ReadinessCheck
}

// NewHandler creates a new API handler. stats may be nil, in which case the
// stats endpoint reports the service unavailable.
func NewHandler(cat *catalog.Catalog, scorer *recommend.Scorer, sessions *session.Manager, stats StatsProvider) *Handler {
	return &Handler{
		catalog:   cat,
		scorer:    scorer,
		sessions:  sessions,
		stats:     stats,
		options:   models.DefaultOnboardingOptions(),
		startTime: time.Now(),
		checks:    make(map[string]ReadinessCheck),
	}
}

// AddReadinessCheck registers a named check consulted by the readiness probe.
func (h *Handler) AddReadinessCheck(name string, check ReadinessCheck) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// readiness runs every registered check and returns the failures by name.
func (h *Handler) readiness() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	failures := make(map[string]string)
	if h.catalog == nil || h.catalog.Len() == 0 {
		failures["catalog"] = "catalog is empty"
	}
	for name, check := range h.checks {
		if err := check(); err != nil {
			failures[name] = err.Error()
		}
	}
	return failures
}

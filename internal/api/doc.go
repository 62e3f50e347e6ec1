// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package api provides the HTTP JSON API for CinemaSwipe.

Routes are registered on a chi router by Router.SetupChi under /api/v1:

	GET    /health/live                liveness probe
	GET    /health/ready               readiness probe
	GET    /onboarding/options         quiz genres, eras and moods
	GET    /stats                      aggregated swipe statistics
	GET    /movies                     catalog listing (limit, offset, genre)
	GET    /movies/{id}                one movie
	GET    /movies/{id}/similar        movies ranked by similarity (k)
	POST   /sessions                   start a session from quiz answers
	GET    /sessions/{id}              session state and current card
	POST   /sessions/{id}/swipe        {"liked": bool}
	POST   /sessions/{id}/reset        restart from the stored preferences
	GET    /sessions/{id}/history      liked movies with genre colors
	GET    /sessions/{id}/queue        upcoming cards (limit)
	DELETE /sessions/{id}              end the session

Prometheus metrics are served at /metrics.

# Response Format

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "SESSION_NOT_FOUND", "message": "..."}}

Validation failures use the VALIDATION_ERROR code with per-field details.

# Middleware

Global: request ID with logging context, real IP, panic recovery, request
logging and CORS (go-chi/cors). API groups add per-IP rate limiting
(go-chi/httprate), security headers, Prometheus request metrics labelled by
route pattern and gzip compression.
*/
package api

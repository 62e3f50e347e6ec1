// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinemaswipe/internal/models"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
	"github.com/tomtom215/cinemaswipe/internal/validation"
)

// HistoryResponse is the payload of GET /sessions/{id}/history.
type HistoryResponse struct {
	SessionID string                 `json:"session_id"`
	Liked     []session.HistoryEntry `json:"liked"`
	Count     int                    `json:"count"`
}

// QueueEntry is an upcoming card. Reason explains the card's rank once the
// session has at least one like.
type QueueEntry struct {
	Movie  models.Movie              `json:"movie"`
	Reason *recommend.ScoreBreakdown `json:"reason,omitempty"`
}

// QueueResponse is the payload of GET /sessions/{id}/queue.
type QueueResponse struct {
	SessionID string       `json:"session_id"`
	Cards     []QueueEntry `json:"cards"`
}

// CreateSession handles POST /api/v1/sessions.
// The body carries the onboarding quiz answers; the response is the new
// session's state including its first card.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var answers session.QuizAnswers
	if err := decodeJSONBody(w, r, &answers); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}

	s, err := h.sessions.Create(r.Context(), answers)
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	rw.Created(s.State())
}

// GetSession handles GET /api/v1/sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	rw.Success(s.State())
}

// Swipe handles POST /api/v1/sessions/{id}/swipe with body {"liked": bool}.
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SwipeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	result, err := h.sessions.Swipe(r.Context(), chi.URLParam(r, "id"), *req.Liked)
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	rw.Success(result)
}

// ResetSession handles POST /api/v1/sessions/{id}/reset.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, err := h.sessions.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	rw.Success(s.State())
}

// SessionHistory handles GET /api/v1/sessions/{id}/history.
func (h *Handler) SessionHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	s, err := h.sessions.Get(id)
	if err != nil {
		writeDomainError(rw, err)
		return
	}

	history := s.History()
	rw.Success(HistoryResponse{SessionID: id, Liked: history, Count: len(history)})
}

// SessionQueue handles GET /api/v1/sessions/{id}/queue?limit=
func (h *Handler) SessionQueue(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := getIntParam(r, "limit", defaultQueueLimit)
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	req := QueueRequest{Limit: limit}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	id := chi.URLParam(r, "id")
	s, err := h.sessions.Get(id)
	if err != nil {
		writeDomainError(rw, err)
		return
	}

	liked, disliked := s.Liked(), s.Disliked()
	cards := s.Queue(req.Limit)
	entries := make([]QueueEntry, len(cards))
	for i, m := range cards {
		entries[i] = QueueEntry{Movie: m}
		if len(liked) > 0 {
			reason := h.scorer.Explain(m, liked, disliked)
			entries[i].Reason = &reason
		}
	}

	rw.Success(QueueResponse{SessionID: id, Cards: entries})
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(rw, err)
		return
	}
	rw.NoContent()
}

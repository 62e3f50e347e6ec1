// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
	"github.com/tomtom215/cinemaswipe/internal/validation"
)

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-1"))
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).Success(map[string]int{"n": 1})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data map[string]int
	env := decodeEnvelope(t, rec, &data)
	if !env.Success || env.Error != nil || data["n"] != 1 {
		t.Errorf("envelope = %+v", env)
	}
	if env.Meta == nil || env.Meta.RequestID != "req-1" || env.Meta.Timestamp.IsZero() {
		t.Errorf("meta = %+v", env.Meta)
	}
}

func TestResponseWriter_Created(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodPost, "/", nil)).Created("ok")

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestResponseWriter_NoContent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodDelete, "/", nil)).NoContent()

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Errorf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestResponseWriter_ValidationError(t *testing.T) {
	t.Parallel()

	req := SwipeRequest{}
	verr := validation.ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error for missing liked")
	}

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodPost, "/", nil)).ValidationError(verr)

	expectError(t, rec, http.StatusBadRequest, ErrCodeValidationFailed)
	env := decodeEnvelope(t, rec, nil)
	details, ok := env.Error.Details.(map[string]interface{})
	if !ok || details["field"] != "liked" {
		t.Errorf("details = %#v, want field liked", env.Error.Details)
	}
}

func TestWriteDomainError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"session not found", fmt.Errorf("%w: abc", session.ErrSessionNotFound), http.StatusNotFound, ErrCodeSessionNotFound},
		{"movie not found", fmt.Errorf("%w: 7", recommend.ErrMovieNotFound), http.StatusNotFound, ErrCodeMovieNotFound},
		{"queue empty", session.ErrNoCurrentMovie, http.StatusConflict, ErrCodeQueueEmpty},
		{"invalid param", fmt.Errorf("%w: k must be an integer", errInvalidParam), http.StatusBadRequest, ErrCodeBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			writeDomainError(NewResponseWriter(rec, httptest.NewRequest(http.MethodGet, "/", nil)), tt.err)
			expectError(t, rec, tt.status, tt.code)
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\tcr\r", `tab\x09cr\x0d`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

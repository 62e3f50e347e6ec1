// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinemaswipe/internal/catalog"
	"github.com/tomtom215/cinemaswipe/internal/events"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
)

// testEnvelope mirrors APIResponse with a raw payload for per-test decoding.
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

type fakeStats struct{ stats events.Stats }

func (f fakeStats) Snapshot() events.Stats { return f.stats }

type testServer struct {
	handler  *Handler
	sessions *session.Manager
	http     http.Handler
}

// newTestServer wires the embedded catalog, a seeded scorer and a session
// manager behind a router with rate limiting disabled.
func newTestServer(t *testing.T, stats StatsProvider) *testServer {
	t.Helper()

	cat, err := catalog.Embedded()
	if err != nil {
		t.Fatalf("catalog.Embedded: %v", err)
	}
	scorer, err := recommend.NewScorer(cat, recommend.DefaultConfig(), zerolog.Nop(),
		recommend.WithRandomSource(recommend.NewRandomSource(7)))
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	sessions := session.NewManager(scorer, session.DefaultConfig(), nil, zerolog.Nop())

	h := NewHandler(cat, scorer, sessions, stats)

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(h, NewChiMiddleware(cfg))

	return &testServer{handler: h, sessions: sessions, http: router.SetupChi()}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope decodes the response and, when out is non-nil, its data.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) testEnvelope {
	t.Helper()

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v (data %s)", err, env.Data)
		}
	}
	return env
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec, nil)
	if env.Success {
		t.Error("success = true on error response")
	}
	if env.Error == nil || env.Error.Code != code {
		t.Fatalf("error = %+v, want code %s", env.Error, code)
	}
}

func createSession(t *testing.T, s *testServer) session.State {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/v1/sessions", map[string]interface{}{
		"genres": []string{"Drama", "Sci-Fi"},
		"era":    "modern",
		"mood":   "thoughtful",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, body %s", rec.Code, rec.Body.String())
	}
	var st session.State
	decodeEnvelope(t, rec, &st)
	return st
}

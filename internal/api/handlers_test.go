// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tomtom215/cinemaswipe/internal/events"
	"github.com/tomtom215/cinemaswipe/internal/models"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var data map[string]interface{}
	env := decodeEnvelope(t, rec, &data)
	if !env.Success || data["alive"] != true {
		t.Errorf("unexpected liveness payload: %s", env.Data)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil)

		rec := s.do(t, http.MethodGet, "/api/v1/health/ready", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var status HealthStatus
		decodeEnvelope(t, rec, &status)
		if status.Status != "ready" || status.CatalogMovies != 50 {
			t.Errorf("status = %+v", status)
		}
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil)
		s.handler.AddReadinessCheck("events", func() error {
			return errors.New("event router not running")
		})

		rec := s.do(t, http.MethodGet, "/api/v1/health/ready", nil)
		expectError(t, rec, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
	})
}

func TestOnboardingOptions(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/onboarding/options", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var opts models.OnboardingOptions
	decodeEnvelope(t, rec, &opts)
	if len(opts.Genres) != 10 {
		t.Errorf("genres = %d, want 10", len(opts.Genres))
	}
	if opts.MaxGenres != models.MaxPreferredGenres {
		t.Errorf("max_genres = %d, want %d", opts.MaxGenres, models.MaxPreferredGenres)
	}
	if len(opts.Eras) != 3 || len(opts.Moods) != 5 {
		t.Errorf("eras = %d moods = %d, want 3 and 5", len(opts.Eras), len(opts.Moods))
	}
}

func TestListMovies(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	t.Run("default page", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/movies", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var movies []models.Movie
		env := decodeEnvelope(t, rec, &movies)
		if len(movies) != 50 || movies[0].ID != 1 {
			t.Errorf("got %d movies, first id %d", len(movies), movies[0].ID)
		}
		p := env.Meta.Pagination
		if p == nil || p.Total != 50 || p.HasMore {
			t.Errorf("pagination = %+v", p)
		}
	})

	t.Run("last page", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/movies?limit=10&offset=45", nil)
		var movies []models.Movie
		env := decodeEnvelope(t, rec, &movies)
		if len(movies) != 5 || env.Meta.Pagination.HasMore {
			t.Errorf("got %d movies, pagination %+v", len(movies), env.Meta.Pagination)
		}
	})

	t.Run("genre filter", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/movies?genre=Drama&limit=100", nil)
		var movies []models.Movie
		decodeEnvelope(t, rec, &movies)
		if len(movies) == 0 {
			t.Fatal("expected dramas in the catalog")
		}
		for _, m := range movies {
			if !m.HasGenre("Drama") {
				t.Errorf("movie %d %q is not a drama", m.ID, m.Title)
			}
		}
	})

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"non-integer limit", "?limit=abc", ErrCodeBadRequest},
		{"zero limit", "?limit=0", ErrCodeValidationFailed},
		{"limit too large", "?limit=500", ErrCodeValidationFailed},
		{"negative offset", "?offset=-1", ErrCodeValidationFailed},
		{"unknown genre", "?genre=Western", ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/api/v1/movies"+tt.query, nil)
			expectError(t, rec, http.StatusBadRequest, tt.code)
		})
	}
}

func TestGetMovie(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/movies/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var m models.Movie
	decodeEnvelope(t, rec, &m)
	if m.ID != 1 || m.Title != "The Godfather" {
		t.Errorf("movie = %d %q", m.ID, m.Title)
	}

	expectError(t, s.do(t, http.MethodGet, "/api/v1/movies/9999", nil), http.StatusNotFound, ErrCodeMovieNotFound)
	expectError(t, s.do(t, http.MethodGet, "/api/v1/movies/abc", nil), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestSimilarMovies(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/movies/1/similar?k=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var resp SimilarResponse
	decodeEnvelope(t, rec, &resp)
	if resp.MovieID != 1 || len(resp.Similar) != 3 {
		t.Fatalf("response = %+v", resp)
	}
	for i, sm := range resp.Similar {
		if sm.Movie.ID == 1 {
			t.Error("similar list contains the movie itself")
		}
		if i > 0 && sm.Score > resp.Similar[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}

	rec = s.do(t, http.MethodGet, "/api/v1/movies/1/similar", nil)
	decodeEnvelope(t, rec, &resp)
	if len(resp.Similar) != recommend.DefaultConfig().Limits.DefaultK {
		t.Errorf("default k returned %d movies", len(resp.Similar))
	}

	expectError(t, s.do(t, http.MethodGet, "/api/v1/movies/9999/similar", nil), http.StatusNotFound, ErrCodeMovieNotFound)
	expectError(t, s.do(t, http.MethodGet, "/api/v1/movies/1/similar?k=-2", nil), http.StatusBadRequest, ErrCodeValidationFailed)
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	st := createSession(t, s)
	if st.ID == "" || st.Current == nil {
		t.Fatalf("new session state = %+v", st)
	}
	first := st.Current.ID

	rec := s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID, nil)
	var got session.State
	decodeEnvelope(t, rec, &got)
	if got.Current == nil || got.Current.ID != first || got.CurrentIndex != 0 {
		t.Errorf("GET state = %+v", got)
	}

	// Queue before any like carries no reasons.
	rec = s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID+"/queue?limit=3", nil)
	var queue QueueResponse
	decodeEnvelope(t, rec, &queue)
	if len(queue.Cards) != 3 || queue.Cards[0].Movie.ID != first || queue.Cards[0].Reason != nil {
		t.Errorf("initial queue = %+v", queue)
	}

	rec = s.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID+"/swipe", map[string]bool{"liked": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("swipe status = %d (%s)", rec.Code, rec.Body.String())
	}
	var swipe session.SwipeResult
	decodeEnvelope(t, rec, &swipe)
	if swipe.Swiped.ID != first || !swipe.Liked || swipe.LikedCount != 1 || swipe.Next == nil {
		t.Errorf("swipe result = %+v", swipe)
	}

	rec = s.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID+"/swipe", map[string]bool{"liked": false})
	decodeEnvelope(t, rec, &swipe)
	if swipe.DislikedCount != 1 || swipe.LikedCount != 1 {
		t.Errorf("second swipe result = %+v", swipe)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID+"/queue", nil)
	decodeEnvelope(t, rec, &queue)
	if len(queue.Cards) != defaultQueueLimit {
		t.Errorf("queue length = %d, want %d", len(queue.Cards), defaultQueueLimit)
	}
	for _, c := range queue.Cards {
		if c.Reason == nil || c.Reason.MovieID != c.Movie.ID || c.Reason.BestMatch == nil {
			t.Fatalf("queue card %d missing reason: %+v", c.Movie.ID, c.Reason)
		}
		if c.Reason.BestMatch.MovieID != first {
			t.Errorf("best match = %d, want the liked movie %d", c.Reason.BestMatch.MovieID, first)
		}
	}

	rec = s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID+"/history", nil)
	var history HistoryResponse
	decodeEnvelope(t, rec, &history)
	if history.Count != 1 || history.Liked[0].Movie.ID != first {
		t.Errorf("history = %+v", history)
	}
	if want := models.GenreColor(history.Liked[0].PrimaryGenre); history.Liked[0].Color != want {
		t.Errorf("color = %q, want %q", history.Liked[0].Color, want)
	}

	rec = s.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID+"/reset", nil)
	decodeEnvelope(t, rec, &got)
	if got.LikedCount != 0 || got.DislikedCount != 0 || got.CurrentIndex != 0 {
		t.Errorf("state after reset = %+v", got)
	}

	rec = s.do(t, http.MethodDelete, "/api/v1/sessions/"+st.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	expectError(t, s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID, nil), http.StatusNotFound, ErrCodeSessionNotFound)
	if s.sessions.Len() != 0 {
		t.Errorf("sessions left = %d", s.sessions.Len())
	}
}

func TestCreateSession_Invalid(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		body interface{}
		code string
	}{
		{"malformed json", "{", ErrCodeBadRequest},
		{"unknown field", `{"genres":["Drama"],"era":"modern","mood":"happy","extra":1}`, ErrCodeBadRequest},
		{"trailing data", `{"genres":["Drama"],"era":"modern","mood":"happy"} {}`, ErrCodeBadRequest},
		{"empty answers", map[string]interface{}{}, ErrCodeValidationFailed},
		{"too many genres", map[string]interface{}{
			"genres": []string{"Drama", "Action", "Comedy", "Horror"}, "era": "modern", "mood": "happy",
		}, ErrCodeValidationFailed},
		{"unknown era", map[string]interface{}{
			"genres": []string{"Drama"}, "era": "future", "mood": "happy",
		}, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/sessions", tt.body)
			expectError(t, rec, http.StatusBadRequest, tt.code)
		})
	}

	if s.sessions.Len() != 0 {
		t.Errorf("invalid requests created %d sessions", s.sessions.Len())
	}
}

func TestSwipe_Invalid(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)
	st := createSession(t, s)

	expectError(t, s.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID+"/swipe", map[string]interface{}{}),
		http.StatusBadRequest, ErrCodeValidationFailed)
	expectError(t, s.do(t, http.MethodPost, "/api/v1/sessions/"+st.ID+"/swipe", `{"liked":"yes"}`),
		http.StatusBadRequest, ErrCodeBadRequest)
	expectError(t, s.do(t, http.MethodPost, "/api/v1/sessions/missing/swipe", map[string]bool{"liked": true}),
		http.StatusNotFound, ErrCodeSessionNotFound)
}

func TestSessionNotFound(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/sessions/nope"},
		{http.MethodPost, "/api/v1/sessions/nope/reset"},
		{http.MethodGet, "/api/v1/sessions/nope/history"},
		{http.MethodGet, "/api/v1/sessions/nope/queue"},
		{http.MethodDelete, "/api/v1/sessions/nope"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			expectError(t, s.do(t, tt.method, tt.path, nil), http.StatusNotFound, ErrCodeSessionNotFound)
		})
	}
}

func TestSessionQueue_InvalidLimit(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)
	st := createSession(t, s)

	expectError(t, s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID+"/queue?limit=0", nil),
		http.StatusBadRequest, ErrCodeValidationFailed)
	expectError(t, s.do(t, http.MethodGet, "/api/v1/sessions/"+st.ID+"/queue?limit=x", nil),
		http.StatusBadRequest, ErrCodeBadRequest)
}

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, nil)
		expectError(t, s.do(t, http.MethodGet, "/api/v1/stats", nil), http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
	})

	t.Run("snapshot", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, fakeStats{stats: events.Stats{Swipes: 4, Likes: 3, Dislikes: 1, LikeRatio: 0.75}})

		rec := s.do(t, http.MethodGet, "/api/v1/stats", nil)
		var stats events.Stats
		decodeEnvelope(t, rec, &stats)
		if stats.Swipes != 4 || stats.LikeRatio != 0.75 {
			t.Errorf("stats = %+v", stats)
		}
	})
}

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/cinemaswipe/internal/models"
)

// Session errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoCurrentMovie  = errors.New("no current movie")
)

// Recommender produces the card queues a session walks through.
// *recommend.Scorer satisfies it.
type Recommender interface {
	InitialRecommendations(prefs models.Preferences) []models.Movie
	UpdateRecommendations(current []models.Movie, swiped models.Movie, liked bool, likedMovies, dislikedMovies []models.Movie) []models.Movie
	MoreRecommendations(likedMovies, dislikedMovies []models.Movie) []models.Movie
}

// Session is one user's pass through the catalog: the quiz answers, the
// current card queue and position, and every verdict so far. All methods
// are safe for concurrent use; actions on one session are serialized.
type Session struct {
	mu sync.Mutex

	// persistMu orders snapshot writes and deletion in the store.
	persistMu sync.Mutex
	deleted   bool

	id        string
	prefs     models.Preferences
	scorer    Recommender
	createdAt time.Time
	updatedAt time.Time

	recommendations []models.Movie
	currentIndex    int
	liked           []models.Movie
	disliked        []models.Movie
}

// SwipeResult describes the outcome of one swipe.
type SwipeResult struct {
	Swiped        models.Movie  `json:"swiped"`
	Liked         bool          `json:"liked"`
	Next          *models.Movie `json:"next,omitempty"`
	QueueRefilled bool          `json:"queue_refilled"`
	LikedCount    int           `json:"liked_count"`
	DislikedCount int           `json:"disliked_count"`
}

// State is a read-only snapshot of a session.
type State struct {
	ID            string             `json:"id"`
	Preferences   models.Preferences `json:"preferences"`
	Current       *models.Movie      `json:"current,omitempty"`
	CurrentIndex  int                `json:"current_index"`
	QueueLength   int                `json:"queue_length"`
	LikedCount    int                `json:"liked_count"`
	DislikedCount int                `json:"disliked_count"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// HistoryEntry is a liked movie as shown in the "My Movies" view.
type HistoryEntry struct {
	Movie        models.Movie `json:"movie"`
	PrimaryGenre string       `json:"primary_genre"`
	Color        string       `json:"color"`
}

// New starts a session from prefs with the initial recommendations loaded
// and the index at the first card. prefs is not validated here.
func New(id string, prefs models.Preferences, scorer Recommender) *Session {
	now := time.Now().UTC()
	s := &Session{
		id:        id,
		prefs:     prefs.Clone(),
		scorer:    scorer,
		createdAt: now,
		updatedAt: now,
	}
	s.recommendations = scorer.InitialRecommendations(s.prefs)
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Preferences returns a copy of the quiz answers.
func (s *Session) Preferences() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Clone()
}

// markDeleted flags the session as ended so no later snapshot is written.
func (s *Session) markDeleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = true
}

func (s *Session) isDeleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleted
}

// Current returns the card at the current index. ok is false when the
// queue is empty.
func (s *Session) Current() (models.Movie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Session) current() (models.Movie, bool) {
	if s.currentIndex >= len(s.recommendations) {
		return models.Movie{}, false
	}
	return s.recommendations[s.currentIndex], true
}

// Swipe records a verdict on the current card.
//
// The card is appended to the liked or disliked list, the queue is re-ranked
// from the updated lists and the index advances by one. When the advanced
// index runs past the re-ranked queue, the queue is replaced by
// MoreRecommendations and the index returns to 0. That refill uses the lists
// as they were before this swipe, so the card just swiped may come back in
// the refilled queue.
func (s *Session) Swipe(liked bool) (SwipeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie, ok := s.current()
	if !ok {
		return SwipeResult{}, ErrNoCurrentMovie
	}

	prevLiked := s.liked[:len(s.liked):len(s.liked)]
	prevDisliked := s.disliked[:len(s.disliked):len(s.disliked)]

	if liked {
		s.liked = append(s.liked, movie)
	} else {
		s.disliked = append(s.disliked, movie)
	}

	updated := s.scorer.UpdateRecommendations(s.recommendations, movie, liked, s.liked, s.disliked)

	refilled := false
	next := s.currentIndex + 1
	if next < len(updated) {
		s.recommendations = updated
		s.currentIndex = next
	} else {
		s.recommendations = s.scorer.MoreRecommendations(prevLiked, prevDisliked)
		s.currentIndex = 0
		refilled = true
	}
	s.updatedAt = time.Now().UTC()

	result := SwipeResult{
		Swiped:        movie,
		Liked:         liked,
		QueueRefilled: refilled,
		LikedCount:    len(s.liked),
		DislikedCount: len(s.disliked),
	}
	if m, ok := s.current(); ok {
		result.Next = &m
	}
	return result, nil
}

// Reset recomputes the initial recommendations from the stored preferences
// and clears both verdict lists.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recommendations = s.scorer.InitialRecommendations(s.prefs)
	s.currentIndex = 0
	s.liked = nil
	s.disliked = nil
	s.updatedAt = time.Now().UTC()
}

// Liked returns the liked movies in like order.
func (s *Session) Liked() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Movie(nil), s.liked...)
}

// Disliked returns the disliked movies in swipe order.
func (s *Session) Disliked() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Movie(nil), s.disliked...)
}

// History returns the liked movies in like order, each tagged with its
// primary genre and display color.
func (s *Session) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]HistoryEntry, len(s.liked))
	for i, m := range s.liked {
		genre := m.PrimaryGenre()
		out[i] = HistoryEntry{
			Movie:        m,
			PrimaryGenre: genre,
			Color:        models.GenreColor(genre),
		}
	}
	return out
}

// Queue returns up to limit upcoming cards starting at the current one.
// A non-positive limit returns the rest of the queue.
func (s *Session) Queue(limit int) []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIndex >= len(s.recommendations) {
		return []models.Movie{}
	}
	rest := s.recommendations[s.currentIndex:]
	if limit > 0 && limit < len(rest) {
		rest = rest[:limit]
	}
	return append([]models.Movie(nil), rest...)
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:            s.id,
		Preferences:   s.prefs.Clone(),
		CurrentIndex:  s.currentIndex,
		QueueLength:   len(s.recommendations),
		LikedCount:    len(s.liked),
		DislikedCount: len(s.disliked),
		CreatedAt:     s.createdAt,
		UpdatedAt:     s.updatedAt,
	}
	if m, ok := s.current(); ok {
		st.Current = &m
	}
	return st
}

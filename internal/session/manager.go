// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinemaswipe/internal/cache"
	"github.com/tomtom215/cinemaswipe/internal/events"
	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/metrics"
	"github.com/tomtom215/cinemaswipe/internal/models"
	"github.com/tomtom215/cinemaswipe/internal/validation"
)

// Publisher receives session domain events. *events.Bus satisfies it.
type Publisher interface {
	PublishEvent(ctx context.Context, e *events.Event) error
}

// Config controls session lifetime.
type Config struct {
	// TTL is how long an idle session is kept.
	TTL time.Duration

	// MaxSessions caps live sessions; the least recently used is evicted.
	MaxSessions int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		TTL:         30 * time.Minute,
		MaxSessions: 10000,
	}
}

// QuizAnswers are the onboarding answers required to start a session: one to
// three genres, an era and a mood.
type QuizAnswers struct {
	Genres []string   `json:"genres" validate:"required,min=1,max=3,unique,dive,genre"`
	Era    models.Era `json:"era" validate:"required,era"`
	Mood   string     `json:"mood" validate:"required,mood"`
}

// Preferences converts the answers into scorer preferences.
func (q QuizAnswers) Preferences() models.Preferences {
	return models.Preferences{
		Genres: append([]string(nil), q.Genres...),
		Era:    q.Era,
		Mood:   q.Mood,
	}
}

// Manager owns the live sessions, keyed by UUID.
type Manager struct {
	scorer    Recommender
	sessions  *cache.LRUCache[*Session]
	publisher Publisher
	store     Store
	lookup    MovieLookup
	logger    zerolog.Logger

	// restoreMu keeps concurrent misses from restoring one id twice.
	restoreMu sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore persists every session change to store. Sessions missing from
// memory are restored from it, resolving movies through lookup.
func WithStore(store Store, lookup MovieLookup) Option {
	return func(m *Manager) {
		m.store = store
		m.lookup = lookup
	}
}

// NewManager creates a manager. publisher may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(scorer Recommender, cfg Config, publisher Publisher, logger zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		scorer:    scorer,
		sessions:  cache.NewLRUCache[*Session](cfg.MaxSessions, cfg.TTL),
		publisher: publisher,
		logger:    logger.With().Str("component", "session").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.sessions.OnEvict(func(id string, _ *Session, reason cache.EvictReason) {
		metrics.SessionsActive.Dec()
		if reason != cache.EvictRemoved {
			metrics.RecordSessionEviction(string(reason))
			m.logger.Debug().Str("session_id", id).Str("reason", string(reason)).Msg("session evicted")
		}
	})

	return m
}

// Create validates the quiz answers and starts a new session.
func (m *Manager) Create(ctx context.Context, answers QuizAnswers) (*Session, error) {
	if verr := validation.ValidateStruct(&answers); verr != nil {
		return nil, verr
	}

	id := uuid.New().String()
	s := New(id, answers.Preferences(), m.scorer)

	m.sessions.Add(id, s)
	metrics.SessionsCreatedTotal.Inc()
	metrics.SessionsActive.Inc()

	ctx = logging.ContextWithSessionID(ctx, id)
	st := s.State()
	logging.Ctx(ctx).Info().
		Strs("genres", answers.Genres).
		Str("era", string(answers.Era)).
		Str("mood", answers.Mood).
		Int("queue_length", st.QueueLength).
		Msg("session started")

	m.persist(ctx, s)
	m.publish(ctx, events.NewEvent(events.TypeSessionStarted, id))
	return s, nil
}

// Get returns the session and restarts its idle timer. With a store
// configured, a session missing from memory is restored from it.
func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.sessions.Get(id)
	if ok {
		m.sessions.Touch(id)
		return s, nil
	}
	return m.restore(id)
}

// restore loads a snapshot into memory.
func (m *Manager) restore(id string) (*Session, error) {
	if m.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	m.restoreMu.Lock()
	defer m.restoreMu.Unlock()
	if s, ok := m.sessions.Get(id); ok {
		return s, nil
	}

	ctx := logging.ContextWithSessionID(context.Background(), id)
	snap, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			metrics.RecordStoreOp("load", "not_found")
			return nil, err
		}
		metrics.RecordStoreOp("load", "error")
		logging.CtxErr(ctx, err).Msg("failed to load session snapshot")
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	metrics.RecordStoreOp("load", "success")

	s, err := Restore(snap, m.scorer, m.lookup)
	if err != nil {
		logging.CtxErr(ctx, err).Msg("discarding unrestorable session snapshot")
		m.forget(ctx, id)
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	m.sessions.Add(id, s)
	metrics.SessionsActive.Inc()
	logging.Ctx(ctx).Info().Int("liked", len(snap.Liked)).Msg("session restored")
	return s, nil
}

// Swipe records a verdict on the session's current card.
func (m *Manager) Swipe(ctx context.Context, id string, liked bool) (SwipeResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return SwipeResult{}, err
	}

	result, err := s.Swipe(liked)
	if err != nil {
		return SwipeResult{}, err
	}

	m.persist(ctx, s)
	metrics.RecordSwipe(liked)
	if result.QueueRefilled {
		metrics.QueueRefillsTotal.Inc()
	}

	ctx = logging.ContextWithSessionID(ctx, id)
	logging.Ctx(ctx).Debug().
		Int("movie_id", result.Swiped.ID).
		Bool("liked", liked).
		Bool("queue_refilled", result.QueueRefilled).
		Msg("swipe recorded")

	e := events.NewEvent(events.TypeSwipeRecorded, id)
	e.MovieID = result.Swiped.ID
	e.Title = result.Swiped.Title
	e.PrimaryGenre = result.Swiped.PrimaryGenre()
	e.Liked = liked
	e.LikedCount = result.LikedCount
	e.DislikedCount = result.DislikedCount
	e.QueueRefilled = result.QueueRefilled
	m.publish(ctx, e)

	return result, nil
}

// Reset restarts the session from its stored preferences.
func (m *Manager) Reset(ctx context.Context, id string) (*Session, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	s.Reset()
	m.persist(ctx, s)
	metrics.SessionResetsTotal.Inc()

	ctx = logging.ContextWithSessionID(ctx, id)
	logging.Ctx(ctx).Info().Msg("session reset")
	m.publish(ctx, events.NewEvent(events.TypeSessionReset, id))
	return s, nil
}

// Delete ends a session. It waits for any snapshot write in flight, and
// no snapshot is written for the session afterwards.
func (m *Manager) Delete(ctx context.Context, id string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	s.persistMu.Lock()
	if s.isDeleted() {
		s.persistMu.Unlock()
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.markDeleted()
	m.sessions.Remove(id)
	ctx = logging.ContextWithSessionID(ctx, id)
	m.forget(ctx, id)
	s.persistMu.Unlock()
	logging.Ctx(ctx).Info().Msg("session ended")
	m.publish(ctx, events.NewEvent(events.TypeSessionEnded, id))
	return nil
}

// Sweep drops expired sessions and returns how many were removed. Stored
// snapshots expire on their own; Sweep only reclaims store space.
func (m *Manager) Sweep() int {
	removed := m.sessions.CleanupExpired()
	if removed > 0 {
		m.logger.Info().Int("removed", removed).Int("remaining", m.sessions.Len()).Msg("expired sessions swept")
	}
	if gc, ok := m.store.(interface{ RunGC() error }); ok {
		if err := gc.RunGC(); err != nil {
			m.logger.Warn().Err(err).Msg("session store gc failed")
		}
	}
	if c, ok := m.store.(interface {
		Count(ctx context.Context) (int, error)
	}); ok {
		n, err := c.Count(context.Background())
		if err != nil {
			metrics.RecordStoreOp("count", "error")
			m.logger.Warn().Err(err).Msg("session store count failed")
		} else {
			metrics.SessionStoreEntries.Set(float64(n))
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// TTL returns the idle timeout.
func (m *Manager) TTL() time.Duration {
	return m.sessions.TTL()
}

// persist saves a snapshot of s without failing the caller; errors are
// logged. The snapshot is taken under persistMu, so the last write always
// carries the latest state.
func (m *Manager) persist(ctx context.Context, s *Session) {
	if m.store == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if s.isDeleted() {
		return
	}
	if err := m.store.Save(ctx, s.Snapshot()); err != nil {
		metrics.RecordStoreOp("save", "error")
		logging.CtxErr(ctx, err).Msg("failed to save session snapshot")
		return
	}
	metrics.RecordStoreOp("save", "success")
}

// forget removes the stored snapshot for id, if any.
func (m *Manager) forget(ctx context.Context, id string) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(ctx, id); err != nil {
		metrics.RecordStoreOp("delete", "error")
		logging.CtxErr(ctx, err).Msg("failed to delete session snapshot")
		return
	}
	metrics.RecordStoreOp("delete", "success")
}

// publish sends e without failing the caller; errors are logged.
func (m *Manager) publish(ctx context.Context, e *events.Event) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.PublishEvent(ctx, e); err != nil {
		logging.CtxErr(ctx, err).Str("event_type", string(e.Type)).Msg("failed to publish session event")
	}
}

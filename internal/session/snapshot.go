// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/cinemaswipe/internal/models"
)

// ErrStaleSnapshot is returned when a snapshot names a movie the catalog no
// longer holds.
var ErrStaleSnapshot = errors.New("snapshot references unknown movie")

// MovieLookup resolves catalog ids. *catalog.Catalog satisfies it.
type MovieLookup interface {
	Get(id int) (models.Movie, bool)
}

// Snapshot is the durable form of a session. Movies are stored by id and
// resolved against the catalog on restore.
type Snapshot struct {
	ID           string             `json:"id"`
	Preferences  models.Preferences `json:"preferences"`
	Queue        []int              `json:"queue"`
	CurrentIndex int                `json:"current_index"`
	Liked        []int              `json:"liked"`
	Disliked     []int              `json:"disliked"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:           s.id,
		Preferences:  s.prefs.Clone(),
		Queue:        movieIDs(s.recommendations),
		CurrentIndex: s.currentIndex,
		Liked:        movieIDs(s.liked),
		Disliked:     movieIDs(s.disliked),
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.updatedAt,
	}
}

// Restore rebuilds a session from snap without calling the scorer.
func Restore(snap Snapshot, scorer Recommender, lookup MovieLookup) (*Session, error) {
	queue, err := resolve(snap.Queue, lookup)
	if err != nil {
		return nil, err
	}
	liked, err := resolve(snap.Liked, lookup)
	if err != nil {
		return nil, err
	}
	disliked, err := resolve(snap.Disliked, lookup)
	if err != nil {
		return nil, err
	}
	if snap.CurrentIndex < 0 || snap.CurrentIndex > len(queue) {
		return nil, fmt.Errorf("snapshot %s: index %d outside queue of %d", snap.ID, snap.CurrentIndex, len(queue))
	}

	return &Session{
		id:              snap.ID,
		prefs:           snap.Preferences.Clone(),
		scorer:          scorer,
		createdAt:       snap.CreatedAt,
		updatedAt:       snap.UpdatedAt,
		recommendations: queue,
		currentIndex:    snap.CurrentIndex,
		liked:           liked,
		disliked:        disliked,
	}, nil
}

func movieIDs(movies []models.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func resolve(ids []int, lookup MovieLookup) ([]models.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]models.Movie, len(ids))
	for i, id := range ids {
		m, ok := lookup.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrStaleSnapshot, id)
		}
		out[i] = m
	}
	return out, nil
}

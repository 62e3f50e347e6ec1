// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// SchemaVersion is the current event schema version.
const SchemaVersion = 1

// Type identifies what happened in a session.
type Type string

const (
	TypeSessionStarted Type = "session.started"
	TypeSwipeRecorded  Type = "session.swipe"
	TypeSessionReset   Type = "session.reset"
	TypeSessionEnded   Type = "session.ended"
)

// Topics the bus publishes on.
const (
	TopicLifecycle = "sessions.lifecycle"
	TopicSwipes    = "sessions.swipes"
)

// Metadata keys set on every message.
const (
	MetadataEventType     = "event_type"
	MetadataSessionID     = "session_id"
	MetadataCorrelationID = "correlation_id"
)

// Validation errors.
var (
	ErrMissingEventID   = errors.New("event_id is required")
	ErrMissingSessionID = errors.New("session_id is required")
	ErrUnknownType      = errors.New("unknown event type")
	ErrMissingMovie     = errors.New("swipe event requires movie_id")
)

// Event is a session domain event. Swipe fields are only set for
// TypeSwipeRecorded.
type Event struct {
	SchemaVersion int       `json:"schema_version"`
	EventID       string    `json:"event_id"`
	Type          Type      `json:"type"`
	SessionID     string    `json:"session_id"`
	Timestamp     time.Time `json:"timestamp"`

	// Swipe details
	MovieID      int    `json:"movie_id,omitempty"`
	Title        string `json:"title,omitempty"`
	PrimaryGenre string `json:"primary_genre,omitempty"`
	Liked        bool   `json:"liked"`

	// Session counters after the event
	LikedCount    int  `json:"liked_count"`
	DislikedCount int  `json:"disliked_count"`
	QueueRefilled bool `json:"queue_refilled,omitempty"`
}

// NewEvent returns an event of type t with a fresh id and timestamp.
func NewEvent(t Type, sessionID string) *Event {
	return &Event{
		SchemaVersion: SchemaVersion,
		EventID:       uuid.New().String(),
		Type:          t,
		SessionID:     sessionID,
		Timestamp:     time.Now().UTC(),
	}
}

// Validate checks required fields.
func (e *Event) Validate() error {
	if e.EventID == "" {
		return ErrMissingEventID
	}
	if e.SessionID == "" {
		return ErrMissingSessionID
	}
	switch e.Type {
	case TypeSessionStarted, TypeSessionReset, TypeSessionEnded:
	case TypeSwipeRecorded:
		if e.MovieID <= 0 {
			return ErrMissingMovie
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, e.Type)
	}
	return nil
}

// Topic returns the topic the event is published on.
func (e *Event) Topic() string {
	if e.Type == TypeSwipeRecorded {
		return TopicSwipes
	}
	return TopicLifecycle
}

// Marshal validates and encodes the event.
func Marshal(e *Event) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Unmarshal decodes an event.
func Unmarshal(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	return &e, nil
}

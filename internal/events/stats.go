// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package events

import (
	"maps"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/metrics"
)

// Handler names registered by StatsConsumer.
const (
	HandlerSwipeStats     = "swipe-stats"
	HandlerLifecycleStats = "lifecycle-stats"
)

// Stats is a point-in-time view of swipe activity since process start.
type Stats struct {
	SessionsStarted int64            `json:"sessions_started"`
	SessionsEnded   int64            `json:"sessions_ended"`
	Resets          int64            `json:"resets"`
	Swipes          int64            `json:"swipes"`
	Likes           int64            `json:"likes"`
	Dislikes        int64            `json:"dislikes"`
	QueueRefills    int64            `json:"queue_refills"`
	LikeRatio       float64          `json:"like_ratio"`
	GenreLikes      map[string]int64 `json:"genre_likes"`
}

// StatsConsumer aggregates session events into process-wide swipe
// statistics and keeps the like-ratio gauge current.
type StatsConsumer struct {
	mu          sync.RWMutex
	stats       Stats
	eventLogger *logging.EventLogger
}

// NewStatsConsumer creates an empty consumer.
func NewStatsConsumer() *StatsConsumer {
	return &StatsConsumer{
		stats:       Stats{GenreLikes: make(map[string]int64)},
		eventLogger: logging.NewEventLogger(),
	}
}

// Register subscribes the consumer to both session topics.
func (c *StatsConsumer) Register(r *Router, sub message.Subscriber) {
	r.AddConsumerHandler(HandlerSwipeStats, TopicSwipes, sub, c.Handle)
	r.AddConsumerHandler(HandlerLifecycleStats, TopicLifecycle, sub, c.Handle)
}

// Handle applies one event message. Malformed payloads are acked and
// dropped.
func (c *StatsConsumer) Handle(msg *message.Message) error {
	ctx := msg.Context()
	if cid := msg.Metadata.Get(MetadataCorrelationID); cid != "" {
		ctx = logging.ContextWithCorrelationID(ctx, cid)
	}

	e, err := Unmarshal(msg.Payload)
	if err == nil {
		err = e.Validate()
	}
	if err != nil {
		c.eventLogger.LogEventFailed(ctx, msg.UUID, msg.Metadata.Get(MetadataEventType), err)
		metrics.RecordEventHandled("unknown", err)
		return nil
	}

	c.apply(e)

	metrics.RecordEventHandled(e.Topic(), nil)
	c.eventLogger.LogEventHandled(ctx, e.EventID, string(e.Type))
	return nil
}

func (c *StatsConsumer) apply(e *Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &c.stats
	switch e.Type {
	case TypeSessionStarted:
		s.SessionsStarted++
	case TypeSessionEnded:
		s.SessionsEnded++
	case TypeSessionReset:
		s.Resets++
	case TypeSwipeRecorded:
		s.Swipes++
		if e.Liked {
			s.Likes++
			if e.PrimaryGenre != "" {
				s.GenreLikes[e.PrimaryGenre]++
			}
		} else {
			s.Dislikes++
		}
		if e.QueueRefilled {
			s.QueueRefills++
		}
		s.LikeRatio = float64(s.Likes) / float64(s.Swipes)
		metrics.LikeRatio.Set(s.LikeRatio)
	}
}

// Snapshot returns a copy of the current statistics.
func (c *StatsConsumer) Snapshot() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := c.stats
	out.GenreLikes = maps.Clone(c.stats.GenreLikes)
	return out
}

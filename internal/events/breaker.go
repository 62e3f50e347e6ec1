// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/metrics"
)

// ErrPublisherUnavailable is returned while the circuit is open.
var ErrPublisherUnavailable = errors.New("event publisher unavailable")

// EventPublisher publishes domain events. *Bus satisfies it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, e *Event) error
}

// BreakerConfig configures the publisher circuit breaker.
type BreakerConfig struct {
	Name string

	// MaxRequests allowed through while half-open.
	MaxRequests uint32

	// Interval clears failure counts while closed. Zero never clears.
	Interval time.Duration

	// Timeout is how long the circuit stays open before probing again.
	Timeout time.Duration

	// FailureThreshold consecutive failures open the circuit.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "event-publisher",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerPublisher stops publishing to a failing bus for a cool-down period
// so swipes don't pay for a broken event pipeline.
type BreakerPublisher struct {
	next EventPublisher
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreakerPublisher wraps next with a circuit breaker.
func NewBreakerPublisher(next EventPublisher, cfg BreakerConfig) *BreakerPublisher {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.EventPublisherCircuitState.Set(float64(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("event publisher circuit changed state")
		},
	}

	return &BreakerPublisher{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[any](settings),
	}
}

// PublishEvent publishes e unless the circuit is open.
func (p *BreakerPublisher) PublishEvent(ctx context.Context, e *Event) error {
	_, err := p.cb.Execute(func() (any, error) {
		return nil, p.next.PublishEvent(ctx, e)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordEventDropped("circuit_open")
		return fmt.Errorf("%w: %w", ErrPublisherUnavailable, err)
	default:
		metrics.RecordEventDropped("publish_error")
		return err
	}
}

// State returns the circuit state: closed, half-open or open.
func (p *BreakerPublisher) State() string {
	return p.cb.State().String()
}

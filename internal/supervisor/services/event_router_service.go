// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EventRouter matches the *events.Router lifecycle methods.
type EventRouter interface {
	Run(ctx context.Context) error
	Close() error
	IsRunning() bool
}

// RouterFactory builds a router with its handlers registered.
type RouterFactory func() (EventRouter, error)

// EventRouterService runs the event router under supervision.
//
// A watermill router cannot be restarted once closed, so each Serve call
// builds a fresh one from the factory.
type EventRouterService struct {
	build RouterFactory
	name  string

	mu      sync.RWMutex
	current EventRouter
}

// NewEventRouterService creates a router service.
func NewEventRouterService(build RouterFactory) *EventRouterService {
	return &EventRouterService{
		build: build,
		name:  "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	router, err := s.build()
	if err != nil {
		return fmt.Errorf("build event router: %w", err)
	}
	s.setCurrent(router)
	defer s.setCurrent(nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("event router stopped: %w", err)
		}
		// An exit while ctx is live counts as a failure toward backoff.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.New("event router exited unexpectedly")

	case <-ctx.Done():
		if err := router.Close(); err != nil {
			return fmt.Errorf("event router close failed: %w", err)
		}
		<-errCh
		return ctx.Err()
	}
}

// IsRunning reports whether the current router is processing messages.
func (s *EventRouterService) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.IsRunning()
}

func (s *EventRouterService) setCurrent(r EventRouter) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}

// String returns the service name for logging.
func (s *EventRouterService) String() string {
	return s.name
}

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SessionSweeper drops idle sessions. Satisfied by *session.Manager.
type SessionSweeper interface {
	Sweep() int
	Len() int
}

// SessionSweeperService evicts expired sessions on a fixed interval so idle
// sessions are reclaimed even when nobody touches the store.
type SessionSweeperService struct {
	sweeper  SessionSweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSessionSweeperService creates a sweeper. A non-positive interval falls
// back to one minute.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSessionSweeperService(sweeper SessionSweeper, interval time.Duration, logger zerolog.Logger) *SessionSweeperService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeperService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", "session-sweeper").Logger(),
		name:     "session-sweeper",
	}
}

// Serve implements suture.Service. A final sweep runs on shutdown.
func (s *SessionSweeperService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.sweep()
			s.logger.Info().Msg("session sweeper shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionSweeperService) sweep() {
	start := time.Now()
	removed := s.sweeper.Sweep()
	s.logger.Debug().
		Int("removed", removed).
		Int("active", s.sweeper.Len()).
		Dur("duration", time.Since(start)).
		Msg("sweep complete")
}

// String returns the service name for logging.
func (s *SessionSweeperService) String() string {
	return s.name
}

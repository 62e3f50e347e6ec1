// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package events carries session domain events over an in-process Watermill
bus.

Every session start, swipe, reset and end is published as an Event. The
session layer never waits on consumers: publishing is fire-and-forget and a
failed publish is logged, never surfaced to the swiping user.

# Architecture

	session.Manager --PublishEvent--> Bus (gochannel) --> Router --> StatsConsumer
	                                  sessions.swipes     Recoverer   swipe counters
	                                  sessions.lifecycle  Retry       like ratio gauge

# Topics

  - sessions.swipes: TypeSwipeRecorded
  - sessions.lifecycle: TypeSessionStarted, TypeSessionReset, TypeSessionEnded

# Usage

	bus := events.NewBus(events.DefaultBusConfig(), nil)
	router, err := events.NewRouter(nil, nil)
	stats := events.NewStatsConsumer()
	stats.Register(router, bus)

	go router.Run(ctx)
	<-router.Running()

	err = bus.PublishEvent(ctx, events.NewEvent(events.TypeSessionStarted, id))

Logging goes through the zerolog-backed slog adapter, so Watermill's own
messages share the application log format.
*/
package events

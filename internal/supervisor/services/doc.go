// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package services provides suture.Service wrappers for CinemaSwipe components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor logs name it.

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Drains connections with Shutdown when ctx is canceled
  - http.ErrServerClosed is a clean stop

Event Router (EventRouterService):
  - Builds a fresh router per Serve call through a RouterFactory, since a
    closed watermill router cannot run again
  - IsRunning backs the readiness probe

Session Sweeper (SessionSweeperService):
  - Calls Sweep on a ticker so idle sessions expire without traffic
  - Sweeps once more on shutdown

# Return Values

	error       -> service crashed, supervisor restarts it
	ctx.Err()   -> shutdown requested, normal termination

# Testing

Each wrapper depends on a small interface (HTTPServer, EventRouter,
SessionSweeper) so tests substitute fakes; the real *http.Server,
*events.Router and *session.Manager satisfy them.
*/
package services

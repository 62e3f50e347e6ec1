// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package supervisor provides process supervision for CinemaSwipe using suture v4.

Every long-running goroutine in the server runs under a hierarchical
supervisor tree with Erlang/OTP-style restart, failure isolation and
graceful shutdown.

# Overview

	RootSupervisor ("cinemaswipe")
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService (watermill router feeding swipe stats)
	└── APISupervisor ("api-layer")
	    ├── HTTPServerService
	    └── SessionSweeperService

A crashing event router only costs the /stats endpoint its freshness; the
HTTP API and session expiry keep running.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddMessagingService(services.NewEventRouterService(buildRouter))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddAPIService(services.NewSessionSweeperService(manager, cfg.Session.SweepInterval, log.Logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

Zero fields in TreeConfig take suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Once the counter passes FailureThreshold the supervisor waits
FailureBackoff before the next restart.

	Service crashes once         -> restart immediately
	Service crashes 5x in 10s    -> wait 15s before restart

# Debugging Shutdown Issues

Services that ignore context cancellation show up in the report:

	report, _ := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    log.Warn().Str("service", svc.Name).Msg("service did not stop")
	}

# See Also

  - internal/supervisor/services: service wrappers
  - github.com/thejerf/suture/v4: underlying library
*/
package supervisor

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package main is the entry point for the CinemaSwipe server.

CinemaSwipe serves a swipe-to-rate movie discovery API: a short onboarding
quiz seeds a queue of cards, and every like or dislike re-ranks the rest of
the catalog by similarity to the user's taste so far.

# Application Architecture

	RootSupervisor ("cinemaswipe")
	├── MessagingSupervisor ("messaging-layer")
	│   └── Event router (session events -> swipe stats)
	└── APISupervisor ("api-layer")
	    ├── HTTP server (chi router, /api/v1)
	    └── Session sweeper

Component initialization order:

 1. Configuration: koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: embedded dataset or CATALOG_PATH
 4. Scorer: recommendation engine with a seeded random source
 5. Events: watermill Go channel bus, router and stats consumer
 6. Sessions: LRU+TTL cache, optional badger snapshots (SESSION_PERSIST),
    publishing through a gobreaker circuit breaker
 7. HTTP: chi router with CORS, rate limiting, metrics and gzip
 8. Supervisor tree: suture v4

# Configuration

Priority: environment variables > config file > defaults.

	HTTP_PORT=8080
	CATALOG_PATH=/data/movies.json
	SESSION_TTL=30m
	SESSION_PERSIST=true         # badger snapshots
	SESSION_STORE_PATH=/data/sessions
	RECOMMEND_SEED=42            # 0 seeds from the clock
	CORS_ORIGINS=https://swipe.example
	LOG_LEVEL=info
	LOG_FORMAT=json

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests within HTTP_SHUTDOWN_TIMEOUT, the sweeper runs once more and the event
router closes after its handlers finish.

# Example Usage

	export LOG_FORMAT=console
	./cinemaswipe

	curl -s -X POST localhost:8080/api/v1/sessions \
	  -d '{"genres":["Drama","Sci-Fi"],"era":"modern","mood":"thoughtful"}'
*/
package main

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package config loads CinemaSwipe configuration with Koanf v2.

Sources are layered: built-in defaults, then an optional YAML file
(CONFIG_PATH, config.yaml, config.yml or /etc/cinemaswipe/config.yaml),
then environment variables. Only mapped environment variables are read.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Catalog:
  - CATALOG_PATH: JSON movie file (default: embedded dataset)

Sessions:
  - SESSION_TTL (default 30m), SESSION_MAX (default 10000)
  - SESSION_SWEEP_INTERVAL (default 1m)
  - SESSION_PERSIST: keep snapshots in badger (default false)
  - SESSION_STORE_PATH: badger directory (default: in memory)

Recommendations:
  - RECOMMEND_SEED (0 seeds from the clock)
  - RECOMMEND_RELAX_THRESHOLD (10), RECOMMEND_FALLBACK_THRESHOLD (5)
  - RECOMMEND_SHUFFLE_WINDOW (20), RECOMMEND_COLD_START_SIZE (30)
  - RECOMMEND_LIKE_WEIGHT (1.5), RECOMMEND_DISLIKE_WEIGHT (1.0), RECOMMEND_JITTER (0.1)

Events:
  - EVENTS_BUFFER_SIZE, EVENTS_RETRY_COUNT, EVENTS_CLOSE_TIMEOUT
  - EVENTS_BREAKER_THRESHOLD (5), EVENTS_BREAKER_TIMEOUT (30s)

Security:
  - CORS_ORIGINS: comma-separated origins (default: none)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT (json or console), LOG_CALLER

# Example YAML

	server:
	  port: 8080
	session:
	  ttl: 45m
	recommend:
	  seed: 42
	security:
	  cors_origins: ["https://swipe.example"]
*/
package config

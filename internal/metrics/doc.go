// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Recommendations:
  - recommend_batches_total{kind}: kind is initial, update, more or similar
  - recommend_batch_size{kind}
  - recommend_duration_seconds{kind}
  - recommend_initial_fallback_total{level}: none, genre_only or full_catalog

Sessions and swipes:
  - catalog_movies
  - sessions_active, sessions_created_total, sessions_evicted_total{reason}
  - swipes_total{verdict}, session_queue_refills_total, session_resets_total
  - swipe_like_ratio

Event bus:
  - events_published_total{topic}
  - events_handled_total{topic,status}

# Example Queries

	# Share of first batches that had to relax the quiz filters
	sum(rate(recommend_initial_fallback_total{level!="none"}[1h]))
	  / sum(rate(recommend_initial_fallback_total[1h]))

	# p95 scorer latency per batch kind
	histogram_quantile(0.95, sum by (kind, le) (rate(recommend_duration_seconds_bucket[5m])))
*/
package metrics

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package middleware provides HTTP middleware for the API.

Key Components:

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

Both use the http.HandlerFunc middleware shape; the api package adapts them
to chi with its chiMiddleware helper:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
*/
package middleware

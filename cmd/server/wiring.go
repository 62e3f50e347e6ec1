// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package main

import (
	"github.com/tomtom215/cinemaswipe/internal/api"
	"github.com/tomtom215/cinemaswipe/internal/config"
	"github.com/tomtom215/cinemaswipe/internal/events"
	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
)

// The helpers below translate the flat application config into each
// package's own config type, keeping internal/config free of domain imports.

func loggingConfig(cfg *config.Config) logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.Caller = cfg.Logging.Caller
	return lc
}

func scorerConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.Seed = cfg.Recommend.Seed
	rc.Initial.RelaxThreshold = cfg.Recommend.RelaxThreshold
	rc.Initial.FallbackThreshold = cfg.Recommend.FallbackThreshold
	rc.Initial.ShuffleWindow = cfg.Recommend.ShuffleWindow
	rc.ColdStart.Size = cfg.Recommend.ColdStartSize
	rc.Feedback.LikeWeight = cfg.Recommend.LikeWeight
	rc.Feedback.DislikeWeight = cfg.Recommend.DislikeWeight
	rc.Feedback.Jitter = cfg.Recommend.Jitter
	return rc
}

func sessionConfig(cfg *config.Config) session.Config {
	return session.Config{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	}
}

func busConfig(cfg *config.Config) events.BusConfig {
	bc := events.DefaultBusConfig()
	bc.OutputChannelBuffer = cfg.Events.BufferSize
	return bc
}

func routerConfig(cfg *config.Config) *events.RouterConfig {
	rc := events.DefaultRouterConfig()
	rc.CloseTimeout = cfg.Events.CloseTimeout
	rc.RetryMaxRetries = cfg.Events.RetryCount
	return &rc
}

func breakerConfig(cfg *config.Config) events.BreakerConfig {
	bc := events.DefaultBreakerConfig()
	bc.FailureThreshold = cfg.Events.BreakerThreshold
	bc.Timeout = cfg.Events.BreakerTimeout
	return bc
}

func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mc := api.DefaultChiMiddlewareConfig()
	mc.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mc.RateLimitRequests = cfg.Security.RateLimitReqs
	mc.RateLimitWindow = cfg.Security.RateLimitWindow
	mc.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mc
}

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.IdleTimeout <= 0 {
		return fmt.Errorf("HTTP timeouts must be positive")
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %s", s.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateSession() error {
	s := c.Session
	if s.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", s.TTL)
	}
	if s.MaxSessions < 1 {
		return fmt.Errorf("SESSION_MAX must be at least 1, got %d", s.MaxSessions)
	}
	if s.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", s.SweepInterval)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.FallbackThreshold < 0 || r.RelaxThreshold < 0 {
		return fmt.Errorf("recommend thresholds must not be negative")
	}
	if r.ShuffleWindow < 0 {
		return fmt.Errorf("RECOMMEND_SHUFFLE_WINDOW must not be negative, got %d", r.ShuffleWindow)
	}
	if r.ColdStartSize < 1 {
		return fmt.Errorf("RECOMMEND_COLD_START_SIZE must be at least 1, got %d", r.ColdStartSize)
	}
	if r.LikeWeight < 0 || r.DislikeWeight < 0 {
		return fmt.Errorf("recommend feedback weights must not be negative")
	}
	if r.Jitter < 0 {
		return fmt.Errorf("RECOMMEND_JITTER must not be negative, got %g", r.Jitter)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must not be negative, got %d", c.Events.BufferSize)
	}
	if c.Events.RetryCount < 0 {
		return fmt.Errorf("EVENTS_RETRY_COUNT must not be negative, got %d", c.Events.RetryCount)
	}
	if c.Events.CloseTimeout <= 0 {
		return fmt.Errorf("EVENTS_CLOSE_TIMEOUT must be positive, got %s", c.Events.CloseTimeout)
	}
	if c.Events.BreakerThreshold < 1 {
		return fmt.Errorf("EVENTS_BREAKER_THRESHOLD must be at least 1, got %d", c.Events.BreakerThreshold)
	}
	if c.Events.BreakerTimeout <= 0 {
		return fmt.Errorf("EVENTS_BREAKER_TIMEOUT must be positive, got %s", c.Events.BreakerTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := c.Security
	if !s.RateLimitDisabled {
		if s.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", s.RateLimitReqs)
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", s.RateLimitWindow)
		}
	}
	for _, origin := range s.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be * or an http(s) origin", origin)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

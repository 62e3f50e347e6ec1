// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: explicit mapping, see envTransformFunc
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Session   SessionConfig   `koanf:"session"`
	Recommend RecommendConfig `koanf:"recommend"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig selects the movie dataset.
type CatalogConfig struct {
	// Path is a JSON file of movies. Empty uses the embedded dataset.
	Path string `koanf:"path"`
}

// SessionConfig controls swipe session lifetime.
type SessionConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	MaxSessions   int           `koanf:"max_sessions"`
	SweepInterval time.Duration `koanf:"sweep_interval"`

	// Persist keeps session snapshots in badger so they survive restarts
	// and cache eviction. StorePath empty runs badger in memory.
	Persist   bool   `koanf:"persist"`
	StorePath string `koanf:"store_path"`
}

// RecommendConfig holds the tunable scorer settings. Similarity weights keep
// their built-in values.
type RecommendConfig struct {
	// Seed for shuffles and jitter; 0 seeds from the clock.
	Seed int64 `koanf:"seed"`

	RelaxThreshold    int     `koanf:"relax_threshold"`
	FallbackThreshold int     `koanf:"fallback_threshold"`
	ShuffleWindow     int     `koanf:"shuffle_window"`
	ColdStartSize     int     `koanf:"cold_start_size"`
	LikeWeight        float64 `koanf:"like_weight"`
	DislikeWeight     float64 `koanf:"dislike_weight"`
	Jitter            float64 `koanf:"jitter"`
}

// EventsConfig controls the in-process session event pipeline.
type EventsConfig struct {
	BufferSize   int64         `koanf:"buffer_size"`
	RetryCount   int           `koanf:"retry_count"`
	CloseTimeout time.Duration `koanf:"close_timeout"`

	// BreakerThreshold consecutive publish failures open the circuit for
	// BreakerTimeout.
	BreakerThreshold uint32        `koanf:"breaker_threshold"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// String summarises the configuration for the startup log without secrets.
func (c *Config) String() string {
	catalog := c.Catalog.Path
	if catalog == "" {
		catalog = "embedded"
	}
	return fmt.Sprintf("addr=%s catalog=%s session_ttl=%s max_sessions=%d seed=%d",
		c.Server.Addr(), catalog, c.Session.TTL, c.Session.MaxSessions, c.Recommend.Seed)
}

// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// AppName is stamped on every line written by the global logger.
const AppName = "cinemaswipe"

// Config holds logging configuration. Zero fields take the DefaultConfig
// value, except Caller and Timestamp which are plain switches.
type Config struct {
	// Level: trace, debug, info, warn, error, fatal, panic or disabled.
	Level string

	// Format: json or console.
	Format string

	Caller    bool
	Timestamp bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns info-level JSON with timestamps on stderr.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// global holds the process logger. Readers never block a reconfiguration.
var global atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // packages log before main calls Init
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	Init(DefaultConfig())
}

// Init builds the global logger from cfg. Later calls replace it, so tests
// can point output at a buffer and restore DefaultConfig afterwards.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	out := cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).With().Str("app", AppName)
	if cfg.Timestamp {
		zctx = zctx.Timestamp()
	}
	if cfg.Caller {
		zctx = zctx.Caller()
	}

	logger := zctx.Logger()
	global.Store(&logger)
}

// ParseLevel maps a LOG_LEVEL value to a zerolog level. Matching ignores
// case and accepts "warning"; empty or unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *global.Load()
}

// With starts a child context of the global logger.
//
//	logger := logging.With().Str("handler", "swipe-stats").Logger()
func With() zerolog.Context {
	return global.Load().With()
}

// Debug, Info, Warn, Error and Fatal start an event on the global logger.
// Fatal exits the process after the event is sent.

func Debug() *zerolog.Event { return global.Load().Debug() }

// Info is the level used for lifecycle messages.
//
//	logging.Info().Int("movies", cat.Len()).Msg("Catalog loaded")
func Info() *zerolog.Event { return global.Load().Info() }

func Warn() *zerolog.Event { return global.Load().Warn() }

func Error() *zerolog.Event { return global.Load().Error() }

func Fatal() *zerolog.Event { return global.Load().Fatal() }

// Err starts an error-level event carrying err, or an info-level event when
// err is nil.
func Err(err error) *zerolog.Event { return global.Load().Err(err) }

// NewTestLogger returns a JSON logger on w without the app field, for
// tests that assert on exact output.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

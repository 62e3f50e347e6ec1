// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

// Package logging provides centralized zerolog-based structured logging for CinemaSwipe.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from config (level, format, caller)
//   - JSON output for production and console output for development
//   - Context-aware logging that carries correlation, request and session IDs
//   - An slog.Handler adapter so suture and watermill log through zerolog
//   - EventLogger for the in-process swipe event bus
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("movies", catalog.Len()).Msg("Catalog loaded")
//	logging.Ctx(ctx).Info().Bool("liked", true).Msg("Swipe recorded")
//
// Component loggers are created once and passed to constructors:
//
//	scorer := recommend.NewScorer(cat, cfg, logging.WithComponent("recommend"))
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and use structured
// fields instead of string formatting.
package logging

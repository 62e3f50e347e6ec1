// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// EventLogger provides logging for the in-process swipe event bus.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger creates an event logger from the global logger.
func NewEventLogger() *EventLogger {
	return NewEventLoggerWithLogger(Logger())
}

// NewEventLoggerWithLogger creates an EventLogger on top of logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEventLoggerWithLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{
		logger: logger.With().Str("component", "events").Logger(),
	}
}

// Info logs an info message with alternating key/value fields.
func (e *EventLogger) Info(msg string, fields ...interface{}) {
	addFieldPairs(e.logger.Info(), fields).Msg(msg)
}

// DebugContext logs a debug message carrying the context IDs.
func (e *EventLogger) DebugContext(ctx context.Context, msg string, fields ...interface{}) {
	logger := e.loggerWithContext(ctx)
	addFieldPairs(logger.Debug(), fields).Msg(msg)
}

// InfoContext logs an info message carrying the context IDs.
func (e *EventLogger) InfoContext(ctx context.Context, msg string, fields ...interface{}) {
	logger := e.loggerWithContext(ctx)
	addFieldPairs(logger.Info(), fields).Msg(msg)
}

func (e *EventLogger) loggerWithContext(ctx context.Context) zerolog.Logger {
	logCtx := e.logger.With()

	if id := CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	if id := SessionIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("session_id", id)
	}

	return logCtx.Logger()
}

// LogEventPublished logs a message published to topic.
func (e *EventLogger) LogEventPublished(ctx context.Context, eventID, topic string) {
	e.DebugContext(ctx, "event published",
		"event_id", eventID,
		"topic", topic,
	)
}

// LogEventHandled logs a message consumed by handler.
func (e *EventLogger) LogEventHandled(ctx context.Context, eventID, handler string) {
	e.DebugContext(ctx, "event handled",
		"event_id", eventID,
		"handler", handler,
	)
}

// LogEventFailed logs a publish or handling failure.
func (e *EventLogger) LogEventFailed(ctx context.Context, eventID, topic string, err error) {
	logger := e.loggerWithContext(ctx)
	logger.Error().
		Str("event_id", eventID).
		Str("topic", topic).
		Err(err).
		Msg("event processing failed")
}

// LogRouterStarted logs when the message router starts.
func (e *EventLogger) LogRouterStarted() {
	e.Info("router started")
}

// LogRouterStopped logs when the message router stops.
func (e *EventLogger) LogRouterStopped() {
	e.Info("router stopped")
}

// addFieldPairs adds alternating key/value pairs; non-string keys are skipped.
func addFieldPairs(ev *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, fields[i+1])
	}
	return ev
}

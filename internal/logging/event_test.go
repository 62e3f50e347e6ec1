// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newEventTestLogger(buf *bytes.Buffer) *EventLogger {
	return NewEventLoggerWithLogger(zerolog.New(buf).Level(zerolog.DebugLevel))
}

func TestEventLogger_Published(t *testing.T) {
	_ = captureGlobal(t, "debug")

	var buf bytes.Buffer
	el := newEventTestLogger(&buf)

	ctx := ContextWithSessionID(context.Background(), "sess-1")
	el.LogEventPublished(ctx, "evt-1", "swipes")

	output := buf.String()
	for _, want := range []string{`"component":"events"`, `"event_id":"evt-1"`, `"topic":"swipes"`, `"session_id":"sess-1"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestEventLogger_Failed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	el := newEventTestLogger(&buf)
	el.LogEventFailed(context.Background(), "evt-2", "swipes", errors.New("closed"))

	output := buf.String()
	if !strings.Contains(output, `"level":"error"`) || !strings.Contains(output, `"error":"closed"`) {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestEventLogger_RouterLifecycle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	el := newEventTestLogger(&buf)
	el.LogRouterStarted()
	el.LogRouterStopped()

	output := buf.String()
	if !strings.Contains(output, "router started") || !strings.Contains(output, "router stopped") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestAddFieldPairs_SkipsBadKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	addFieldPairs(logger.Info(), []interface{}{"ok", 1, 42, "ignored", "dangling"}).Msg("x")

	output := buf.String()
	if !strings.Contains(output, `"ok":1`) {
		t.Errorf("expected ok field, got: %s", output)
	}
	if strings.Contains(output, "ignored") || strings.Contains(output, "dangling") {
		t.Errorf("malformed pairs should be skipped, got: %s", output)
	}
}

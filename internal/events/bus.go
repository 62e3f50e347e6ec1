// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/metrics"
)

// BusConfig holds configuration for the in-process event bus.
type BusConfig struct {
	// OutputChannelBuffer is the per-subscriber channel buffer.
	OutputChannelBuffer int64

	// BlockPublishUntilAck makes Publish wait until subscribers ack.
	// Tests enable it to observe handler effects synchronously.
	BlockPublishUntilAck bool
}

// DefaultBusConfig returns production defaults for the bus.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		OutputChannelBuffer:  256,
		BlockPublishUntilAck: false,
	}
}

// Bus is an in-process pub/sub built on Watermill's Go channel transport.
// It implements both message.Publisher and message.Subscriber, so the
// router consumes the same instance the session layer publishes to.
type Bus struct {
	pubsub      *gochannel.GoChannel
	eventLogger *logging.EventLogger
}

// NewBus creates a bus. A nil logger uses the zerolog-backed slog adapter.
func NewBus(cfg BusConfig, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NewSlogLogger(logging.NewSlogLogger("events"))
	}

	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            cfg.OutputChannelBuffer,
			BlockPublishUntilSubscriberAck: cfg.BlockPublishUntilAck,
		}, logger),
		eventLogger: logging.NewEventLogger(),
	}
}

// PublishEvent encodes e and publishes it on its topic. The correlation id
// from ctx travels in the message metadata.
func (b *Bus) PublishEvent(ctx context.Context, e *Event) error {
	payload, err := Marshal(e)
	if err != nil {
		return err
	}

	msg := message.NewMessage(e.EventID, payload)
	msg.Metadata.Set(MetadataEventType, string(e.Type))
	msg.Metadata.Set(MetadataSessionID, e.SessionID)
	if cid := logging.CorrelationIDFromContext(ctx); cid != "" {
		msg.Metadata.Set(MetadataCorrelationID, cid)
	}
	msg.SetContext(ctx)

	topic := e.Topic()
	if err := b.pubsub.Publish(topic, msg); err != nil {
		b.eventLogger.LogEventFailed(ctx, e.EventID, topic, err)
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	metrics.RecordEventPublished(topic)
	b.eventLogger.LogEventPublished(ctx, e.EventID, topic)
	return nil
}

// Publish implements message.Publisher.
func (b *Bus) Publish(topic string, messages ...*message.Message) error {
	return b.pubsub.Publish(topic, messages...)
}

// Subscribe implements message.Subscriber.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close closes the bus and every subscription.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

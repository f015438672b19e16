// Package redisbus implements the event bus over Redis Pub/Sub so several
// service instances can share one event stream. Redis Pub/Sub is
// fire-and-forget with at-most-once delivery, which matches the notification
// semantics: an instance that is down simply misses the event.
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"freight/internal/core/domain/events"
	"freight/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const channelPrefix = "freight:events:"

// EventBus publishes and consumes domain events through Redis channels.
// One Redis channel per topic, JSON payloads.
type EventBus struct {
	client *redis.Client
	logger *slog.Logger
}

// NewEventBus creates a Redis-backed event bus on an already connected client.
func NewEventBus(client *redis.Client, logger *slog.Logger) *EventBus {
	return &EventBus{
		client: client,
		logger: logger.With("component", "redis-event-bus"),
	}
}

// Publish marshals the payload and sends it to the topic's channel.
// Subscribers that are down miss the event; nothing is retried.
func (b *EventBus) Publish(ctx context.Context, topic events.Topic, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", topic, err)
	}

	if err = b.client.Publish(ctx, channelPrefix+string(topic), body).Err(); err != nil {
		return fmt.Errorf("publish event %s: %w", topic, err)
	}

	return nil
}

// Subscribe opens a Redis subscription on the given topics and pumps decoded
// envelopes into the returned channel until the context is cancelled.
func (b *EventBus) Subscribe(ctx context.Context, topics ...events.Topic) (<-chan ports.Envelope, error) {
	channels := make([]string, 0, len(topics))
	for _, topic := range topics {
		channels = append(channels, channelPrefix+string(topic))
	}

	sub := b.client.Subscribe(ctx, channels...)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("subscribe to redis channels: %w", err)
	}

	out := make(chan ports.Envelope)
	go b.pump(ctx, sub, out)

	return out, nil
}

func (b *EventBus) pump(ctx context.Context, sub *redis.PubSub, out chan<- ports.Envelope) {
	defer close(out)
	defer func() {
		if err := sub.Close(); err != nil {
			b.logger.Warn("closing redis subscription", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}

			topic := events.Topic(msg.Channel[len(channelPrefix):])
			payload, err := decode(topic, []byte(msg.Payload))
			if err != nil {
				b.logger.Warn("dropping undecodable event", "topic", topic, "error", err)
				continue
			}

			select {
			case out <- ports.Envelope{Topic: topic, Payload: payload}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// decode maps a topic back to its concrete event type. Consumers switch on
// the payload type, so handing them json.RawMessage would not do.
func decode(topic events.Topic, body []byte) (any, error) {
	switch topic {
	case events.TopicPositionChanged:
		return unmarshal[events.PositionChanged](body)
	case events.TopicCarrierWentOffline:
		return unmarshal[events.CarrierWentOffline](body)
	case events.TopicProximityReached:
		return unmarshal[events.ProximityReached](body)
	case events.TopicBidSubmitted:
		return unmarshal[events.BidSubmitted](body)
	case events.TopicBidAccepted:
		return unmarshal[events.BidAccepted](body)
	case events.TopicBidRejected:
		return unmarshal[events.BidRejected](body)
	case events.TopicJobTransitioned:
		return unmarshal[events.JobTransitioned](body)
	default:
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
}

func unmarshal[T any](body []byte) (any, error) {
	var event T
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	return event, nil
}

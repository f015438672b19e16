// Package inproc provides a channel-based event bus for single-process
// deployments and tests. Delivery is fire-and-forget: a subscriber that
// cannot keep up loses events rather than blocking publishers.
package inproc

import (
	"context"
	"log/slog"
	"sync"

	"freight/internal/core/domain/events"
	"freight/internal/core/ports"
)

const subscriberBuffer = 64

// EventBus fans envelopes out to in-process subscribers.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[events.Topic][]chan ports.Envelope
	logger      *slog.Logger
}

// NewEventBus creates an in-process event bus.
func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		subscribers: make(map[events.Topic][]chan ports.Envelope),
		logger:      logger.With("component", "inproc-event-bus"),
	}
}

// Publish delivers the payload to every subscriber of the topic without
// blocking. A full subscriber channel drops the envelope for that subscriber.
func (b *EventBus) Publish(_ context.Context, topic events.Topic, payload any) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	envelope := ports.Envelope{Topic: topic, Payload: payload}
	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- envelope:
		default:
			b.logger.Warn("subscriber channel full, dropping event", "topic", topic)
		}
	}

	return nil
}

// Subscribe registers a channel for the given topics. The channel closes
// when the context is cancelled.
func (b *EventBus) Subscribe(ctx context.Context, topics ...events.Topic) (<-chan ports.Envelope, error) {
	ch := make(chan ports.Envelope, subscriberBuffer)

	b.mu.Lock()
	for _, topic := range topics {
		b.subscribers[topic] = append(b.subscribers[topic], ch)
	}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
		close(ch)
	}()

	return ch, nil
}

func (b *EventBus) unsubscribe(ch chan ports.Envelope) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, channels := range b.subscribers {
		kept := channels[:0]
		for _, c := range channels {
			if c != ch {
				kept = append(kept, c)
			}
		}
		b.subscribers[topic] = kept
	}
}

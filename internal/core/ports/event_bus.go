package ports

import (
	"context"

	"freight/internal/core/domain/events"
)

// Envelope carries a single event over the bus together with its topic.
// Payload holds the concrete event struct from the events package.
type Envelope struct {
	Topic   events.Topic
	Payload any
}

// EventBus is the fire-and-forget event transport between the application
// core and its reactors. Publish never blocks command handling on slow
// subscribers, and delivery is at-most-once: a subscriber that cannot keep
// up loses events rather than stalling publishers.
type EventBus interface {
	// Publish sends the event to all current subscribers of the topic.
	// An error means the event could not be handed to the transport at
	// all; it never reports individual subscriber failures.
	Publish(ctx context.Context, topic events.Topic, payload any) error

	// Subscribe returns a channel delivering events published on the
	// given topics after the call. The channel closes when ctx is done.
	Subscribe(ctx context.Context, topics ...events.Topic) (<-chan Envelope, error)
}

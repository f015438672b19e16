// Package events defines the domain events exchanged over the event bus and
// the topics they are published on. Events are plain payloads; delivery
// semantics (fire and forget, at-most-once) belong to the bus implementations.
package events

// Package pubsub provides the typed publish/subscribe channel that carries
// session snapshots and watcher notifications to the Bubble Tea loop.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// SnapshotEvent carries a full copy of published state.
	SnapshotEvent EventType = "snapshot"
	// ChangedEvent signals that an external resource changed.
	ChangedEvent EventType = "changed"
	// ErrorEvent reports a failure in a background producer.
	ErrorEvent EventType = "error"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

package ports

import (
	"context"
)

// Event types consumed by the notification collaborator.
const (
	EventAssignmentCreated = "assignment-created"
	EventEtaUpdated        = "eta-updated"
)

// Event is one notification message. Payload carries type-specific fields
// (worker id, ETA minutes) and is serialized by the adapter.
type Event struct {
	Type      string
	BookingID string
	Payload   map[string]any
}

// EventPublisher delivers events to the notification collaborator.
// Publishing is fire-and-forget from the domain's point of view: callers
// log failures but never fail their own operation on one.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

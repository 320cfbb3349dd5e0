package kernel

import (
	"maps"
	"time"
)

// Event is a fact recorded by an aggregate during a state change, for example
// "load_request.accepted". Events are written to the outbox in the same transaction
// as the change itself and published to the notification collaborator afterwards.
type Event struct {
	id          UUID
	name        string
	aggregateID UUID
	occurredAt  time.Time
	attributes  map[string]string
}

// NewEvent stamps a new event with a fresh identifier. The attributes map is copied.
func NewEvent(name string, aggregateID UUID, occurredAt time.Time, attributes map[string]string) Event {
	return Event{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  occurredAt.UTC(),
		attributes:  maps.Clone(attributes),
	}
}

func (e Event) ID() UUID {
	return e.id
}

func (e Event) Name() string {
	return e.name
}

func (e Event) AggregateID() UUID {
	return e.aggregateID
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Attributes returns a copy of the event payload.
func (e Event) Attributes() map[string]string {
	return maps.Clone(e.attributes)
}

// EventRecorder is embedded by aggregates that publish events.
type EventRecorder struct {
	events []Event
}

func (r *EventRecorder) Record(event Event) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (r *EventRecorder) DomainEvents() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}

package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event persisted in the same transaction as the change
// that produced it, waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	Retries     int
	CreatedAt   time.Time
}

// OutboxRepository reads and settles pending outbox messages.
type OutboxRepository interface {
	// ListPending returns up to limit unsent messages, oldest first.
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// Ack marks the message as sent.
	Ack(ctx context.Context, id kernel.UUID) error

	// IncrementRetries records a failed publish attempt.
	IncrementRetries(ctx context.Context, id kernel.UUID) error
}

// Notifier publishes an outbox message to whoever listens for lifecycle transitions.
type Notifier interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}

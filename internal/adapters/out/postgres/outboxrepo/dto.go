// Package outboxrepo stores domain events next to the state change that produced them
// and hands them to the notification dispatcher.
package outboxrepo

import (
	"encoding/json"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventName   string     `gorm:"not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	Retries     int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"not null;index;autoCreateTime:false"`
	SentAt      *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox"
}

// eventPayload is the JSON document published to notifiers.
type eventPayload struct {
	EventID     string            `json:"eventId"`
	Name        string            `json:"name"`
	AggregateID string            `json:"aggregateId"`
	OccurredAt  time.Time         `json:"occurredAt"`
	Attributes  map[string]string `json:"attributes"`
}

func fromEvent(event kernel.Event) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(eventPayload{
		EventID:     event.ID().String(),
		Name:        event.Name(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt(),
		Attributes:  event.Attributes(),
	})
	if err != nil {
		return OutboxMessageDTO{}, err
	}

	return OutboxMessageDTO{
		ID:          event.ID().Bytes(),
		EventName:   event.Name(),
		AggregateID: event.AggregateID().Bytes(),
		Payload:     payload,
		CreatedAt:   event.OccurredAt(),
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventName:   dto.EventName,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		Retries:     dto.Retries,
		CreatedAt:   dto.CreatedAt,
	}, nil
}

package outboxrepo

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AddEvents appends events to the outbox. It runs on the transaction of the caller.
func (r *GormOutboxRepository) AddEvents(ctx context.Context, events []kernel.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromEvent(event)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListPending skips rows locked by another dispatcher so two instances never
// publish the same batch.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, mapErr := toMessage(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *GormOutboxRepository) Ack(ctx context.Context, id kernel.UUID) error {
	return r.update(ctx, id, "sent_at", time.Now().UTC())
}

func (r *GormOutboxRepository) IncrementRetries(ctx context.Context, id kernel.UUID) error {
	return r.update(ctx, id, "retries", gorm.Expr("retries + 1"))
}

func (r *GormOutboxRepository) update(ctx context.Context, id kernel.UUID, column string, value any) error {
	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessageId", id.String())
	}
	return nil
}

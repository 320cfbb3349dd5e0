package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/ports"
)

// DispatchResult counts the outcome of one dispatch run.
type DispatchResult struct {
	Published int
	Failed    int
}

// DispatchNotificationsCommandHandler publishes pending outbox messages through the
// configured notifier. A message that fails to publish is logged at warn level, its
// retry counter is bumped and it stays pending for the next run. Publish failures are
// never returned as errors.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "notification_dispatcher"),
	}
}

func (h DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	command DispatchNotificationsCommand,
) (DispatchResult, error) {
	var result DispatchResult
	if err := command.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()

	pending, err := outbox.ListPending(ctx, command.BatchSize())
	if err != nil {
		return result, err
	}

	for _, msg := range pending {
		if pubErr := h.notifier.Publish(ctx, msg); pubErr != nil {
			h.logger.Warn("failed to publish notification",
				"event", msg.EventName,
				"aggregate_id", msg.AggregateID.String(),
				"retries", msg.Retries,
				"error", pubErr,
			)
			if err = outbox.IncrementRetries(ctx, msg.ID); err != nil {
				return result, err
			}
			result.Failed++
			continue
		}

		if err = outbox.Ack(ctx, msg.ID); err != nil {
			return result, err
		}
		result.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	return result, nil
}

package notifier

import (
	"context"
	"log/slog"

	"freight/internal/core/ports"
)

// LogNotifier only logs. It is the default when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	n.logger.InfoContext(ctx, "lifecycle notification",
		"event", msg.EventName,
		"eventId", msg.ID.String(),
		"aggregateId", msg.AggregateID.String(),
		"payload", string(msg.Payload),
	)
	return nil
}

package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

type notificationDispatcher interface {
	Handle(ctx context.Context, command commands.DispatchNotificationsCommand) (commands.DispatchResult, error)
}

// NotificationDispatchJob drains the outbox every second.
type NotificationDispatchJob struct {
	handler   notificationDispatcher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNotificationDispatchJob(
	handler notificationDispatcher,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "notification_dispatch_job"),
	}
}

// Start schedules Run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)",
		"batchSize", j.batchSize)
	return nil
}

// Run dispatches one batch. Errors are logged, the next tick tries again.
func (j *NotificationDispatchJob) Run(ctx context.Context) {
	cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid dispatch batch size", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	metrics.TrackNotifications(result.Published, result.Failed)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch failed", "error", err)
		return
	}

	if result.Published > 0 || result.Failed > 0 {
		j.logger.DebugContext(ctx, "Notifications dispatched",
			"published", result.Published, "failed", result.Failed)
	}
}

// Stop waits for a running dispatch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// NotificationDispatchJob runs every second and publishes pending outbox messages
// (load request, bid and rating events) through the configured notifier.
// A tick is skipped while the previous one is still running.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(dispatchHandler, cfg.OutboxBatchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Publish failures never surface here: the dispatch handler keeps the message pending
// and bumps its retry counter. Only storage errors are logged by the job.
package jobs

// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryStatusJob - Runs every second to advance order statuses:
// dispatched orders go out for delivery after the configured preparation
// window and out-for-delivery orders are marked delivered after the
// configured travel window, releasing their drivers into cooldown.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceDeliveriesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The job uses the cron expression "* * * * * *", running every second so
// status changes land close to their thresholds.
//
// # Error Handling
//
// An empty sweep is not an error. Failures are logged and the next tick
// retries; each sweep runs in its own transaction.
package jobs

// Package jobs provides scheduled background tasks for the inventory service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with seconds.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - counts, per business, orders dated before today that are
// not COMPLETED, logs a warning for each business with any and publishes the
// inventory_overdue_orders gauge. It never writes to the database.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueHandler, appMetrics, "0 */15 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs

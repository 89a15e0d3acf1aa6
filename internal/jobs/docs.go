// Package jobs provides scheduled background tasks for the delivery back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Runs every second to assign pending orders to free couriers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignCourierHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps dispatch latency low for newly placed orders.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending orders, no free couriers)
// - Failed job starts will stop any already running jobs
package jobs

// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the medicine order lifecycle.
//
// # Available Jobs
//
// 1. PendingDoseMonitorJob - Runs every minute and reports approved orders
// whose computed dose has not arrived yet. The dose request itself is
// at-most-once, so the job only surfaces the gap; it never re-requests.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the read database handle
//	jobManager := jobs.NewJobManager(gormDB, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs

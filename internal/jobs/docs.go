// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the booking service.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every five seconds to assign the oldest pending booking to the nearest eligible worker
// 2. EtaRefreshJob - Runs every thirty seconds to recompute arrival estimates for en route bookings
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, refreshEtasHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch job ignores expected business errors (no pending bookings, no available workers)
// - ETA refresh job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs

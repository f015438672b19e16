// Package jobs provides scheduled background tasks for the freight service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for fleet coordination.
//
// # Available Jobs
//
// 1. OfflineSweeperJob - Runs every thirty seconds to mark carriers offline
// when their latest position report is older than the staleness threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(positionRepo, markOfflineHandler, threshold, logger)
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
// The sweeper uses the cron expression "*/30 * * * * *", running every thirty
// seconds. Staleness is judged against a configurable threshold; a carrier is
// swept once its last report is older than the threshold at sweep time.
//
// # Error Handling
//
// - A failure for one carrier is logged and does not abort the sweep
// - Sweeping an already offline carrier is a no-op in the command handler
package jobs

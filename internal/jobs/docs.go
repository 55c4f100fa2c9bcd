// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment workflow.
//
// # Available Jobs
//
// 1. DispatchSweepJob - Runs every five seconds to offer verified orders to available vehicles and drivers
// 2. PriorityRecomputeJob - Runs every minute to re-derive order priorities as delivery slots approach
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(bulkAssignHandler, recomputeHandler, logger)
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
// - The dispatch sweep ignores expected business outcomes (order already taken, no vehicle or driver free)
// - The priority recompute logs only sweeps that actually moved a priority
// - Failed job starts will stop any already running jobs
package jobs

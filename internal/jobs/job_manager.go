package jobs

import (
	"fmt"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchSweepJob     *DispatchSweepJob
	priorityRecomputeJob *PriorityRecomputeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	bulkAssignHandler commands.BulkAssignCommandHandler,
	recomputeHandler commands.RecomputePrioritiesCommandHandler,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		dispatchSweepJob:     NewDispatchSweepJob(bulkAssignHandler, logger),
		priorityRecomputeJob: NewPriorityRecomputeJob(recomputeHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch sweep job: %w", err)
	}

	if err := jm.priorityRecomputeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchSweepJob.Stop()
		return fmt.Errorf("failed to start priority recompute job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.priorityRecomputeJob.Stop()
	jm.dispatchSweepJob.Stop()
}

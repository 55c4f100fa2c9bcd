package jobs

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DispatchSweepJob periodically offers the assignable pool to the scheduler.
// Runs every five seconds so verified orders do not sit waiting for a manual
// dispatch, and re-offers orders a driver has rejected.
type DispatchSweepJob struct {
	handler commands.BulkAssignCommandHandler
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewDispatchSweepJob creates a job that sweeps the assignable pool.
func NewDispatchSweepJob(handler commands.BulkAssignCommandHandler, logger zerolog.Logger) *DispatchSweepJob {
	return &DispatchSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With().Str("component", "dispatch_sweep_job").Logger(),
	}
}

// Start begins the dispatch sweep job to run every five seconds.
func (j *DispatchSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewBulkAssignCommand("system-scheduler", "Dispatch Scheduler")
		if err != nil {
			j.logger.Error().Err(err).Msg("dispatch sweep could not build command")
			return
		}

		results, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error().Err(err).Msg("dispatch sweep failed")
			return
		}

		for _, result := range results {
			if result.Err == nil {
				j.logger.Info().Str("order_id", result.OrderID.String()).Msg("order assigned")
				continue
			}
			// An order raced away, or the pool of vehicles or drivers is
			// exhausted. Both resolve on a later sweep.
			if errors.Is(result.Err, order.ErrAlreadyAssigned) ||
				errors.Is(result.Err, services.ErrNoSuitableVehicle) ||
				errors.Is(result.Err, services.ErrNoAvailableDriver) {
				continue
			}
			j.logger.Error().Err(result.Err).
				Str("order_id", result.OrderID.String()).
				Msg("dispatch sweep could not assign order")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("dispatch sweep job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch sweep job.
func (j *DispatchSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("dispatch sweep job stopped")
}

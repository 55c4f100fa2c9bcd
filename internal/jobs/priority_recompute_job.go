package jobs

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PriorityRecomputeJob re-derives order priorities against the clock.
// Runs once a minute; an order placed days ahead climbs from low to urgent
// as its delivery slot approaches.
type PriorityRecomputeJob struct {
	handler commands.RecomputePrioritiesCommandHandler
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewPriorityRecomputeJob creates a job that keeps stored priorities fresh.
func NewPriorityRecomputeJob(
	handler commands.RecomputePrioritiesCommandHandler, logger zerolog.Logger,
) *PriorityRecomputeJob {
	return &PriorityRecomputeJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With().Str("component", "priority_recompute_job").Logger(),
	}
}

// Start begins the priority recompute job to run at the top of every minute.
func (j *PriorityRecomputeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRecomputePrioritiesCommand()
		if err != nil {
			j.logger.Error().Err(err).Msg("priority recompute could not build command")
			return
		}

		changed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error().Err(err).Msg("priority recompute failed")
			return
		}
		if changed > 0 {
			j.logger.Info().Int("changed", changed).Msg("order priorities recomputed")
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("priority recompute job started (running every minute)")
	return nil
}

// Stop stops the priority recompute job.
func (j *PriorityRecomputeJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("priority recompute job stopped")
}

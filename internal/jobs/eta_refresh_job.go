package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EtaRefreshJob manages the scheduled recomputation of arrival estimates.
// Runs every thirty seconds to re-announce ETAs for en route bookings from
// the workers' last known positions.
type EtaRefreshJob struct {
	handler commands.RefreshEtasCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEtaRefreshJob creates a new job for refreshing arrival estimates.
func NewEtaRefreshJob(handler commands.RefreshEtasCommandHandler, logger *slog.Logger) *EtaRefreshJob {
	return &EtaRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "eta_refresh_job"),
	}
}

// Start begins the ETA refresh job to run every thirty seconds.
func (j *EtaRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshEtasCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "ETA refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "ETA refresh job started (running every thirty seconds)")
	return nil
}

// Stop stops the ETA refresh job.
func (j *EtaRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "ETA refresh job stopped")
}

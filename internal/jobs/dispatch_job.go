package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchJob manages the scheduled matching of pending bookings to workers.
// Runs every five seconds to assign the oldest pending booking to the
// nearest eligible worker.
type DispatchJob struct {
	handler commands.DispatchPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a new job for dispatching pending bookings.
// Uses DispatchPendingCommandHandler to process one booking per tick.
func NewDispatchJob(handler commands.DispatchPendingCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every five seconds.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingBooking) && !errors.Is(err, commands.ErrNoAvailableWorkers) {
				j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically reclaims orders stuck in pending status.
// A pending order older than the configured age means a checkout died
// between reserving stock and settling the payment; the job cancels it
// and returns its stock to the catalog.
type StaleOrderJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates a job expiring pending orders older than maxAge.
func NewStaleOrderJob(handler commands.ExpireStaleOrdersCommandHandler, maxAge time.Duration, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStaleOrdersCommand(time.Now().Add(-j.maxAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order job misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

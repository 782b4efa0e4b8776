package jobs

import (
	"context"
	"log/slog"

	"workforce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SummaryReconciliationJob periodically rebuilds the per-job application
// summaries. The summaries are maintained incrementally on every apply;
// the rebuild exists to repair drift, not to produce the counters.
type SummaryReconciliationJob struct {
	handler  commands.ReconcileSummariesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSummaryReconciliationJob creates a job that rebuilds summaries on the
// given cron schedule (with a seconds field).
func NewSummaryReconciliationJob(
	handler commands.ReconcileSummariesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SummaryReconciliationJob {
	return &SummaryReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "summary_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its schedule.
func (j *SummaryReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileSummariesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Summary reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Summary reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *SummaryReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Summary reconciliation job stopped")
}

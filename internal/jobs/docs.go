// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SummaryReconciliationJob - Periodically rebuilds the per-job
// application summaries from the application rows, repairing any drift
// between the incrementally maintained counters and the source of truth.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; the
// summaries stay eventually consistent as long as one run succeeds.
package jobs

package ports

import (
	"context"
	"time"

	"workforce/internal/core/domain/model/application"
	"workforce/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for applications
// and the per-job summary.
type ApplicationRepository interface {
	// Add persists a new application. Dangling applicant or job references
	// surface as ConstraintViolationError; duplicates are allowed.
	Add(ctx context.Context, aggregate *application.Application) error

	// IncrementSummary bumps the job's application count and last-applied
	// timestamp in one atomic insert-or-increment statement. It must never
	// be synthesized from a read followed by a write: concurrent applies to
	// the same job must not lose increments.
	IncrementSummary(ctx context.Context, jobID kernel.UUID, appliedAt time.Time) error

	// GetSummary retrieves the job's summary.
	// Returns ObjectNotFoundError when no application was ever recorded.
	GetSummary(ctx context.Context, jobID kernel.UUID) (application.Summary, error)

	// RebuildSummaries recomputes every summary row from the application
	// rows in a single statement, repairing any drift.
	RebuildSummaries(ctx context.Context) error
}

package ports

import (
	"context"

	"workforce/internal/core/domain/model/job"
	"workforce/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job. A missing employer surfaces as
	// ConstraintViolationError.
	Add(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by identifier.
	// Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// Delete removes a job. The store cascades to the job's applications
	// and summary. Returns ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}

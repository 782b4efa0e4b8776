package queries

import (
	"context"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobSummaryQueryHandler retrieves a job's application summary.
// A job that never received an application has no summary row; that case
// surfaces as ObjectNotFoundError rather than a zero summary.
type JobSummaryQueryHandler struct {
	db *gorm.DB
}

// NewJobSummaryQueryHandler creates a handler for job summary queries.
// Requires a GORM database connection for query execution.
func NewJobSummaryQueryHandler(db *gorm.DB) JobSummaryQueryHandler {
	return JobSummaryQueryHandler{db: db}
}

// Handle executes the query to retrieve the job's summary.
func (h JobSummaryQueryHandler) Handle(
	ctx context.Context,
	query JobSummaryQuery,
) (JobSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return JobSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			job_id,
			total_applications,
			last_applied_at
		FROM job_applications_summary
		WHERE job_id = ?
	`, query.JobID().String()).Rows()
	if err != nil {
		return JobSummaryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return JobSummaryQueryResponse{}, err
		}
		return JobSummaryQueryResponse{}, errs.NewObjectNotFoundError("jobID", query.JobID())
	}

	var summary JobSummaryQueryResponse
	var jobID uuid.UUID

	err = rows.Scan(
		&jobID,
		&summary.TotalApplications,
		&summary.LastAppliedAt,
	)
	if err != nil {
		return JobSummaryQueryResponse{}, err
	}

	id, idErr := kernel.UUIDFromBytes(jobID[:])
	if idErr != nil {
		return JobSummaryQueryResponse{}, idErr
	}
	summary.JobID = id

	return summary, nil
}

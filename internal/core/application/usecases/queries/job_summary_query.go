package queries

import (
	"errors"
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var (
	ErrJobSummaryQueryIsNotConstructed = errors.New(
		"JobSummaryQuery must be created via NewJobSummaryQuery constructor",
	)
)

// JobSummaryQuery retrieves the application summary for one job.
//
// Example:
//
//	query, _ := NewJobSummaryQuery(jobID)
//	handler := NewJobSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no application recorded for this job yet
//	}
type JobSummaryQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewJobSummaryQuery creates a query for a job's application summary.
func NewJobSummaryQuery(jobID kernel.UUID) (JobSummaryQuery, error) {
	query := JobSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setJobID(jobID); err != nil {
		return JobSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrJobSummaryQueryIsNotConstructed if validation fails.
func (q JobSummaryQuery) Validate() error {
	return q.guard.Validate(ErrJobSummaryQueryIsNotConstructed)
}

// JobID returns the job whose summary is requested.
func (q JobSummaryQuery) JobID() kernel.UUID {
	return q.jobID
}

func (q *JobSummaryQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	q.jobID = jobID
	return nil
}

// JobSummaryQueryResponse represents the per-job application counters.
type JobSummaryQueryResponse struct {
	JobID             kernel.UUID
	TotalApplications int
	LastAppliedAt     time.Time
}

package application

import (
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"
)

// Summary is the denormalized per-job application aggregate: one row per
// job holding the total application count and the last submission time.
//
// Summaries are maintained by the storage layer's atomic insert-or-increment;
// this type is a read model, not a mutable aggregate. Its lifetime is bound
// to the job's: deleting the job deletes the summary.
type Summary struct {
	jobID             kernel.UUID
	totalApplications int
	lastAppliedAt     time.Time
}

// RestoreSummary reconstructs a summary from persistence.
func RestoreSummary(jobID kernel.UUID, totalApplications int, lastAppliedAt time.Time) (Summary, error) {
	if err := jobID.Validate(); err != nil {
		return Summary{}, err
	}
	if totalApplications < 0 {
		return Summary{}, errs.NewValueIsInvalidError("totalApplications")
	}
	return Summary{
		jobID:             jobID,
		totalApplications: totalApplications,
		lastAppliedAt:     lastAppliedAt,
	}, nil
}

// JobID returns the summarized job's identifier.
func (s Summary) JobID() kernel.UUID {
	return s.jobID
}

// TotalApplications returns the application count for the job.
func (s Summary) TotalApplications() int {
	return s.totalApplications
}

// LastAppliedAt returns the timestamp of the most recent application.
func (s Summary) LastAppliedAt() time.Time {
	return s.lastAppliedAt
}

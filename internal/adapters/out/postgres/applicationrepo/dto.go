// Package applicationrepo provides data transfer objects and mapping
// functions for application persistence, including the per-job summary
// read model maintained alongside the application rows.
package applicationrepo

import (
	"time"

	"workforce/internal/adapters/out/postgres/jobrepo"
	"workforce/internal/adapters/out/postgres/userrepo"
	"workforce/internal/core/domain/model/application"
	"workforce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO represents the database structure for persisting
// applications. Deleting the applicant or the job cascades to the rows.
// The same worker may apply to the same job more than once.
type ApplicationDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ApplicantID uuid.UUID         `gorm:"type:uuid;index;not null"`
	Applicant   *userrepo.UserDTO `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
	JobID       uuid.UUID         `gorm:"type:uuid;index;not null"`
	Job         *jobrepo.JobDTO   `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Status      string            `gorm:"not null;default:pending"`
	AppliedAt   time.Time         `gorm:"not null"`
}

// TableName specifies the database table name for application entities.
func (ApplicationDTO) TableName() string {
	return "applications"
}

// SummaryDTO represents the per-job application counters.
// One row per job, created on the first application and incremented in
// place afterwards. Deleting the job removes the row.
type SummaryDTO struct {
	JobID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Job               *jobrepo.JobDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	TotalApplications int             `gorm:"not null"`
	LastAppliedAt     time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for summary rows.
func (SummaryDTO) TableName() string {
	return "job_applications_summary"
}

// fromDomain converts an application entity to its database representation.
func fromDomain(entity *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:          entity.ID().Bytes(),
		ApplicantID: entity.ApplicantID().Bytes(),
		JobID:       entity.JobID().Bytes(),
		Status:      entity.Status().String(),
		AppliedAt:   entity.AppliedAt(),
	}
}

// summaryToDomain converts a summary DTO to its read model.
func summaryToDomain(dto SummaryDTO) (application.Summary, error) {
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return application.Summary{}, err
	}

	return application.RestoreSummary(jobID, dto.TotalApplications, dto.LastAppliedAt)
}

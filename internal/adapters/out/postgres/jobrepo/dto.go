// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. The spatial cell is stored denormalized next to the raw
// coordinates so cell lookups never recompute the index.
package jobrepo

import (
	"time"

	"workforce/internal/adapters/out/postgres/userrepo"
	"workforce/internal/core/domain/model/job"
	"workforce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Deleting the owning employer cascades to the job rows.
type JobDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	Latitude    float64           `gorm:"not null"`
	Longitude   float64           `gorm:"not null"`
	Cell        string            `gorm:"index;not null"`
	EmployerID  uuid.UUID         `gorm:"type:uuid;index;not null"`
	Employer    *userrepo.UserDTO `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE"`
	Status      string            `gorm:"not null;default:open"`
	CreatedAt   time.Time         `gorm:"not null"`
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Latitude:    aggregate.Position().Latitude(),
		Longitude:   aggregate.Position().Longitude(),
		Cell:        aggregate.Cell().String(),
		EmployerID:  aggregate.EmployerID().Bytes(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employerID, err := kernel.UUIDFromBytes(dto.EmployerID[:])
	if err != nil {
		return nil, err
	}

	position, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	cell, err := kernel.CellIDFromString(dto.Cell)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, dto.Title, dto.Description, position, cell, employerID, status, dto.CreatedAt)
}

// Package queries contains read operations over the job marketplace.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structs.
package queries

import (
	"errors"
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var (
	ErrListJobsQueryIsNotConstructed = errors.New(
		"ListJobsQuery must be created via NewListJobsQuery constructor",
	)
)

// ListJobsQuery retrieves every job posting.
//
// Example:
//
//	query := NewListJobsQuery()
//	handler := NewListJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list jobs: %w", err)
//	}
type ListJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewListJobsQuery creates a query to retrieve all jobs.
// This is a parameterless query.
func NewListJobsQuery() ListJobsQuery {
	return ListJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListJobsQueryIsNotConstructed if validation fails.
func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

// JobResponse represents a job posting read model.
// Shared by the listing and cell-lookup queries, which return the same row
// shape.
type JobResponse struct {
	ID          kernel.UUID
	Title       string
	Description string
	Position    kernel.GeoPoint
	Cell        kernel.CellID
	EmployerID  kernel.UUID
	Status      string
	CreatedAt   time.Time
}

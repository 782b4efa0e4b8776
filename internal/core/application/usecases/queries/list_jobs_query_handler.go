package queries

import (
	"context"
	"database/sql"

	"workforce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListJobsQueryHandler retrieves all job postings from the database.
// Uses direct SQL for read performance in the CQRS pattern.
type ListJobsQueryHandler struct {
	db *gorm.DB
}

// NewListJobsQueryHandler creates a handler for job listing queries.
// Requires a GORM database connection for query execution.
func NewListJobsQueryHandler(db *gorm.DB) ListJobsQueryHandler {
	return ListJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve all jobs.
// Results are sorted by creation time so listings are stable.
func (h ListJobsQueryHandler) Handle(
	ctx context.Context,
	query ListJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			description,
			latitude,
			longitude,
			cell,
			employer_id,
			status,
			created_at
		FROM jobs
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}

// scanJobRows converts job rows into read models. Shared by the listing
// and cell-lookup handlers.
func scanJobRows(rows *sql.Rows) ([]JobResponse, error) {
	jobs := make([]JobResponse, 0)

	for rows.Next() {
		var job JobResponse
		var id, employerID uuid.UUID
		var latitude, longitude float64
		var cell string

		err := rows.Scan(
			&id,
			&job.Title,
			&job.Description,
			&latitude,
			&longitude,
			&cell,
			&employerID,
			&job.Status,
			&job.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		job.ID = jobID

		ownerID, idErr := kernel.UUIDFromBytes(employerID[:])
		if idErr != nil {
			return nil, idErr
		}
		job.EmployerID = ownerID

		position, posErr := kernel.NewGeoPoint(latitude, longitude)
		if posErr != nil {
			return nil, posErr
		}
		job.Position = position

		cellID, cellErr := kernel.CellIDFromString(cell)
		if cellErr != nil {
			return nil, cellErr
		}
		job.Cell = cellID

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

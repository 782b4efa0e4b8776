package queries

import (
	"context"

	"gorm.io/gorm"
)

// JobsByCellQueryHandler retrieves the jobs stored under one spatial cell.
// The cell column is indexed, so the lookup never scans the whole table.
type JobsByCellQueryHandler struct {
	db *gorm.DB
}

// NewJobsByCellQueryHandler creates a handler for cell lookup queries.
// Requires a GORM database connection for query execution.
func NewJobsByCellQueryHandler(db *gorm.DB) JobsByCellQueryHandler {
	return JobsByCellQueryHandler{db: db}
}

// Handle executes the query to retrieve the jobs in the query's cell.
// Returns an empty slice when no job is indexed there.
func (h JobsByCellQueryHandler) Handle(
	ctx context.Context,
	query JobsByCellQuery,
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
		WHERE cell = ?
		ORDER BY created_at, id
	`, query.Cell().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}

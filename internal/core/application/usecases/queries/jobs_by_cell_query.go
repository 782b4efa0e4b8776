package queries

import (
	"errors"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var (
	ErrJobsByCellQueryIsNotConstructed = errors.New(
		"JobsByCellQuery must be created via NewJobsByCellQuery constructor",
	)
)

// JobsByCellQuery retrieves the jobs indexed under one spatial cell.
// The match is exact: neighbouring cells are not searched.
//
// Example:
//
//	cell, _ := kernel.CellIDFromString("871f1d489ffffff")
//	query, _ := NewJobsByCellQuery(cell)
//	handler := NewJobsByCellQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
type JobsByCellQuery struct { //nolint:recvcheck //using for validation
	cell kernel.CellID

	guard guard.ConstructorGuard
}

// NewJobsByCellQuery creates a query for jobs in the given cell.
func NewJobsByCellQuery(cell kernel.CellID) (JobsByCellQuery, error) {
	query := JobsByCellQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCell(cell); err != nil {
		return JobsByCellQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrJobsByCellQueryIsNotConstructed if validation fails.
func (q JobsByCellQuery) Validate() error {
	return q.guard.Validate(ErrJobsByCellQueryIsNotConstructed)
}

// Cell returns the spatial cell to look up.
func (q JobsByCellQuery) Cell() kernel.CellID {
	return q.cell
}

func (q *JobsByCellQuery) setCell(cell kernel.CellID) error {
	if err := cell.Validate(); err != nil {
		return err
	}
	q.cell = cell
	return nil
}

package queries

import (
	"errors"
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var (
	ErrAuditLogQueryIsNotConstructed = errors.New(
		"AuditLogQuery must be created via NewAuditLogQuery constructor",
	)
)

// AuditLogQuery retrieves the full audit trail in creation order.
//
// Example:
//
//	query := NewAuditLogQuery()
//	handler := NewAuditLogQueryHandler(db)
//
//	entries, err := handler.Handle(ctx, query)
type AuditLogQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditLogQuery creates a query to retrieve the audit trail.
// This is a parameterless query.
func NewAuditLogQuery() AuditLogQuery {
	return AuditLogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuditLogQueryIsNotConstructed if validation fails.
func (q AuditLogQuery) Validate() error {
	return q.guard.Validate(ErrAuditLogQueryIsNotConstructed)
}

// AuditLogQueryResponse represents one audit trail entry.
// PerformedBy is nil when the acting user has since been deleted.
type AuditLogQueryResponse struct {
	Seq         int64
	TableName   string
	Action      string
	RecordID    kernel.UUID
	PerformedBy *kernel.UUID
	OccurredAt  time.Time
}

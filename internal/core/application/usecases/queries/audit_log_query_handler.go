package queries

import (
	"context"

	"workforce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogQueryHandler retrieves the audit trail from the database.
// The sequence column is assigned by the store, so ordering by it yields
// creation order.
type AuditLogQueryHandler struct {
	db *gorm.DB
}

// NewAuditLogQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewAuditLogQueryHandler(db *gorm.DB) AuditLogQueryHandler {
	return AuditLogQueryHandler{db: db}
}

// Handle executes the query to retrieve all audit entries in creation order.
func (h AuditLogQueryHandler) Handle(
	ctx context.Context,
	query AuditLogQuery,
) ([]AuditLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]AuditLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_name,
			action,
			record_id,
			performed_by,
			occurred_at
		FROM audit_log
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry AuditLogQueryResponse
		var recordID uuid.UUID
		var performedBy uuid.NullUUID

		err = rows.Scan(
			&entry.Seq,
			&entry.TableName,
			&entry.Action,
			&recordID,
			&performedBy,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(recordID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.RecordID = id

		if performedBy.Valid {
			actorID, actorErr := kernel.UUIDFromBytes(performedBy.UUID[:])
			if actorErr != nil {
				return nil, actorErr
			}
			entry.PerformedBy = &actorID
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

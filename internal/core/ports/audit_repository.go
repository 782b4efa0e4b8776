package ports

import (
	"context"

	"workforce/internal/core/domain/model/audit"
)

// AuditRepository defines the append-only persistence contract for the
// audit trail. Entries are never updated or deleted through this port.
type AuditRepository interface {
	// Append durably records an entry. The store assigns the sequence
	// number; creation order equals sequence order.
	Append(ctx context.Context, entry *audit.Entry) error
}

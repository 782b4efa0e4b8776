// Package auditrepo provides data transfer objects and mapping functions
// for the append-only audit trail. The autoincrement primary key doubles as
// the creation-order sequence.
package auditrepo

import (
	"time"

	"workforce/internal/adapters/out/postgres/userrepo"
	"workforce/internal/core/domain/model/audit"
	"workforce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditLogDTO represents one audit trail row. The actor reference is
// nulled, not cascaded, when the acting user is deleted, so the trail
// itself survives every cascade.
type AuditLogDTO struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	Table       string            `gorm:"column:table_name;not null"`
	Action      string            `gorm:"not null"`
	RecordID    uuid.UUID         `gorm:"type:uuid;not null"`
	PerformedBy *uuid.UUID        `gorm:"type:uuid;index"`
	Actor       *userrepo.UserDTO `gorm:"foreignKey:PerformedBy;constraint:OnDelete:SET NULL"`
	OccurredAt  time.Time         `gorm:"not null"`
}

// TableName specifies the database table name for audit entries.
func (AuditLogDTO) TableName() string {
	return "audit_log"
}

// fromDomain converts an audit entry to its database representation.
// The sequence number is left to the store.
func fromDomain(entry *audit.Entry) AuditLogDTO {
	var performedBy *uuid.UUID
	if actor := entry.PerformedBy(); actor != nil {
		raw := actor.Bytes()
		performedBy = &raw
	}

	return AuditLogDTO{
		Table:       entry.TableName(),
		Action:      string(entry.Action()),
		RecordID:    entry.RecordID().Bytes(),
		PerformedBy: performedBy,
		OccurredAt:  entry.OccurredAt(),
	}
}

// toDomain converts a database DTO to an audit entry.
func toDomain(dto AuditLogDTO) (*audit.Entry, error) {
	recordID, err := kernel.UUIDFromBytes(dto.RecordID[:])
	if err != nil {
		return nil, err
	}

	var performedBy *kernel.UUID
	if dto.PerformedBy != nil {
		actorID, actorErr := kernel.UUIDFromBytes((*dto.PerformedBy)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		performedBy = &actorID
	}

	return audit.RestoreEntry(dto.ID, dto.Table, audit.Action(dto.Action), recordID, performedBy, dto.OccurredAt)
}

package audit

import (
	"errors"
	"fmt"
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Action is the kind of mutation an audit entry records.
type Action string

const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

// Audited table names.
const (
	TableUsers        = "users"
	TableJobs         = "jobs"
	TableApplications = "applications"
)

// Validate checks that the action is one of the defined kinds.
func (a Action) Validate() error {
	switch a {
	case ActionCreate, ActionDelete:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid audit action", a))
	}
}

// Entry is one append-only audit record.
//
// The sequence number is assigned by the store on append (zero before
// persistence) and defines creation order. PerformedBy is nullable: system
// actions and entries whose actor was since deleted carry no actor.
type Entry struct {
	seq         int64
	tableName   string
	action      Action
	recordID    kernel.UUID
	performedBy *kernel.UUID
	occurredAt  time.Time

	isConstructed bool
}

// NewEntry creates an entry timestamped now (UTC), not yet sequenced.
func NewEntry(tableName string, action Action, recordID kernel.UUID, performedBy *kernel.UUID) (*Entry, error) {
	return RestoreEntry(0, tableName, action, recordID, performedBy, time.Now().UTC())
}

// RestoreEntry reconstructs an entry from persistence with its sequence
// number and original timestamp.
func RestoreEntry(
	seq int64,
	tableName string,
	action Action,
	recordID kernel.UUID,
	performedBy *kernel.UUID,
	occurredAt time.Time,
) (*Entry, error) {
	e := &Entry{
		seq:           seq,
		performedBy:   performedBy,
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setTableName(tableName),
		e.setAction(action),
		e.setRecordID(recordID),
	); err != nil {
		return nil, err
	}

	if performedBy != nil {
		if err := performedBy.Validate(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// Seq returns the store-assigned sequence number (zero before append).
func (e *Entry) Seq() int64 {
	return e.seq
}

// TableName returns the affected table's name.
func (e *Entry) TableName() string {
	return e.tableName
}

// Action returns the recorded mutation kind.
func (e *Entry) Action() Action {
	return e.action
}

// RecordID returns the affected record's identifier.
func (e *Entry) RecordID() kernel.UUID {
	return e.recordID
}

// PerformedBy returns the acting user's identifier, or nil.
func (e *Entry) PerformedBy() *kernel.UUID {
	return e.performedBy
}

// OccurredAt returns the entry's timestamp (UTC).
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Entry) setTableName(tableName string) error {
	if tableName == "" {
		return errs.NewValueIsRequiredError("tableName")
	}
	e.tableName = tableName
	return nil
}

func (e *Entry) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}

func (e *Entry) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}
	e.recordID = recordID
	return nil
}

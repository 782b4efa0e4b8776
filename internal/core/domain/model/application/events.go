package application

import (
	"time"

	"workforce/internal/core/domain/model/kernel"
)

// SubmittedEvent is the domain event published after an application has been
// durably recorded. Emission is best-effort: observability only, never part
// of the operation's outcome.
type SubmittedEvent struct {
	ApplicationID kernel.UUID
	ApplicantID   kernel.UUID
	JobID         kernel.UUID
	AppliedAt     time.Time
}

// NewSubmittedEvent builds the event from a recorded application.
func NewSubmittedEvent(a *Application) SubmittedEvent {
	return SubmittedEvent{
		ApplicationID: a.ID(),
		ApplicantID:   a.ApplicantID(),
		JobID:         a.JobID(),
		AppliedAt:     a.AppliedAt(),
	}
}

package commands

import (
	"errors"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand represents a request to remove a job posting.
// The store cascades the deletion to the job's applications and summary.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteJobCommand creates a command to delete a job.
// requesterID is recorded as the audit actor.
func NewDeleteJobCommand(jobID, requesterID kernel.UUID) (DeleteJobCommand, error) {
	cmd := DeleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setRequesterID(requesterID),
	); err != nil {
		return DeleteJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to delete.
func (c DeleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// RequesterID returns the requesting user's identifier.
func (c DeleteJobCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *DeleteJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *DeleteJobCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	return nil
}

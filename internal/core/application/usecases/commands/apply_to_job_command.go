package commands

import (
	"errors"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var ErrApplyToJobCommandIsNotConstructed = errors.New(
	"ApplyToJobCommand must be created via NewApplyToJobCommand constructor",
)

// ApplyToJobCommand represents a worker's request to apply to a job.
//
// Neither the applicant nor the job is checked for existence up front:
// dangling references are rejected by the store's foreign keys, and
// repeated applications to the same job are allowed.
type ApplyToJobCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	applicantID   kernel.UUID
	jobID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyToJobCommand creates a command to record an application.
func NewApplyToJobCommand(applicationID, applicantID, jobID kernel.UUID) (ApplyToJobCommand, error) {
	cmd := ApplyToJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setApplicantID(applicantID),
		cmd.setJobID(jobID),
	); err != nil {
		return ApplyToJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyToJobCommand) Validate() error {
	return c.guard.Validate(ErrApplyToJobCommandIsNotConstructed)
}

// ApplicationID returns the identifier for the new application.
func (c ApplyToJobCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// ApplicantID returns the applying worker's identifier.
func (c ApplyToJobCommand) ApplicantID() kernel.UUID {
	return c.applicantID
}

// JobID returns the target job's identifier.
func (c ApplyToJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ApplyToJobCommand) setApplicationID(applicationID kernel.UUID) error {
	if err := applicationID.Validate(); err != nil {
		return err
	}
	c.applicationID = applicationID
	return nil
}

func (c *ApplyToJobCommand) setApplicantID(applicantID kernel.UUID) error {
	if err := applicantID.Validate(); err != nil {
		return err
	}
	c.applicantID = applicantID
	return nil
}

func (c *ApplyToJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

package commands

import (
	"errors"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"
	"workforce/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to post a job at a geographic
// position. The coordinates are validated at construction, so out-of-range
// input never reaches the handler.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	title       string
	description string
	position    kernel.GeoPoint
	employerID  kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to post a new job.
// latitude/longitude must be valid WGS84 coordinates; employerID is the
// owning employer and requesterID the user asking for the posting.
func NewCreateJobCommand(
	jobID kernel.UUID,
	title, description string,
	latitude, longitude float64,
	employerID, requesterID kernel.UUID,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	position, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return CreateJobCommand{}, err
	}
	cmd.position = position

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setTitle(title),
		cmd.setEmployerID(employerID),
		cmd.setRequesterID(requesterID),
	); err != nil {
		return CreateJobCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Title returns the job title.
func (c CreateJobCommand) Title() string {
	return c.title
}

// Description returns the optional job description.
func (c CreateJobCommand) Description() string {
	return c.description
}

// Position returns the validated coordinates.
func (c CreateJobCommand) Position() kernel.GeoPoint {
	return c.position
}

// EmployerID returns the owning employer's identifier.
func (c CreateJobCommand) EmployerID() kernel.UUID {
	return c.employerID
}

// RequesterID returns the requesting user's identifier.
func (c CreateJobCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *CreateJobCommand) setEmployerID(employerID kernel.UUID) error {
	if err := employerID.Validate(); err != nil {
		return err
	}
	c.employerID = employerID
	return nil
}

func (c *CreateJobCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	return nil
}

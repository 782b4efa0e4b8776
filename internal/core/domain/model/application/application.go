package application

import (
	"errors"
	"time"

	"workforce/internal/core/domain/model/kernel"
)

// ErrApplicationIsNotConstructed is returned when an Application instance was
// not created through NewApplication or RestoreApplication.
var ErrApplicationIsNotConstructed = errors.New(
	"Application must be created via NewApplication or RestoreApplication constructor")

// Application records that a worker applied to a job.
//
// The applicant and job references are not checked for existence here: the
// store's foreign keys reject dangling references, and duplicates are
// allowed on purpose.
type Application struct {
	id          kernel.UUID
	applicantID kernel.UUID
	jobID       kernel.UUID
	status      Status
	appliedAt   time.Time

	isConstructed bool
}

// NewApplication creates a Pending application timestamped now (UTC).
func NewApplication(id, applicantID, jobID kernel.UUID) (*Application, error) {
	return RestoreApplication(id, applicantID, jobID, Pending, time.Now().UTC())
}

// RestoreApplication reconstructs an application from persistence.
func RestoreApplication(id, applicantID, jobID kernel.UUID, status Status, appliedAt time.Time) (*Application, error) {
	a := &Application{
		appliedAt:     appliedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setApplicantID(applicantID),
		a.setJobID(jobID),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Application was created through a constructor.
func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

// IsEqual compares two applications by identifier.
func (a *Application) IsEqual(other *Application) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// ApplicantID returns the applying worker's identifier.
func (a *Application) ApplicantID() kernel.UUID {
	return a.applicantID
}

// JobID returns the target job's identifier.
func (a *Application) JobID() kernel.UUID {
	return a.jobID
}

// Status returns the review status.
func (a *Application) Status() Status {
	return a.status
}

// AppliedAt returns the submission timestamp (UTC).
func (a *Application) AppliedAt() time.Time {
	return a.appliedAt
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setApplicantID(applicantID kernel.UUID) error {
	if err := applicantID.Validate(); err != nil {
		return err
	}
	a.applicantID = applicantID
	return nil
}

func (a *Application) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	a.jobID = jobID
	return nil
}

func (a *Application) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

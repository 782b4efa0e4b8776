package job

import (
	"errors"
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through NewJob or RestoreJob.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// Job is the aggregate root for a posting at a geographic position.
//
// Invariants:
//   - valid unique identifier and owning employer identifier
//   - non-empty title; description is optional
//   - valid coordinates; the spatial cell is recomputed from them at
//     creation time and never accepted from callers
//   - status follows the Open -> Closed lifecycle
type Job struct {
	id          kernel.UUID
	title       string
	description string
	position    kernel.GeoPoint
	cell        kernel.CellID
	employerID  kernel.UUID
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewJob creates an Open job and derives its spatial cell from position at
// the marketplace's fixed resolution.
func NewJob(id kernel.UUID, title, description string, position kernel.GeoPoint, employerID kernel.UUID) (*Job, error) {
	j := &Job{
		status:        Open,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setDescription(description),
		j.setPosition(position),
		j.setEmployerID(employerID),
	); err != nil {
		return nil, err
	}

	cell, err := position.Cell(kernel.DefaultCellResolution)
	if err != nil {
		return nil, err
	}
	j.cell = cell

	return j, nil
}

// RestoreJob reconstructs a job from persistence, keeping the stored cell,
// status and creation timestamp. All invariants are re-checked.
func RestoreJob(
	id kernel.UUID,
	title, description string,
	position kernel.GeoPoint,
	cell kernel.CellID,
	employerID kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Job, error) {
	j := &Job{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setDescription(description),
		j.setPosition(position),
		j.setEmployerID(employerID),
		j.setStatus(status),
		cell.Validate(),
	); err != nil {
		return nil, err
	}
	j.cell = cell

	return j, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Title returns the job title.
func (j *Job) Title() string {
	return j.title
}

// Description returns the optional description; empty when none was given.
func (j *Job) Description() string {
	return j.description
}

// Position returns the job's coordinates.
func (j *Job) Position() kernel.GeoPoint {
	return j.position
}

// Cell returns the spatial cell identifier derived from the position.
func (j *Job) Cell() kernel.CellID {
	return j.cell
}

// EmployerID returns the owning employer's identifier.
func (j *Job) EmployerID() kernel.UUID {
	return j.employerID
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// CreatedAt returns the creation timestamp (UTC).
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// Close transitions the job to Closed. Only an Open job may be closed.
func (j *Job) Close() error {
	newStatus, err := j.status.Close()
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	j.title = title
	return nil
}

func (j *Job) setDescription(description string) error {
	j.description = description
	return nil
}

func (j *Job) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	j.position = position
	return nil
}

func (j *Job) setEmployerID(employerID kernel.UUID) error {
	if err := employerID.Validate(); err != nil {
		return err
	}
	j.employerID = employerID
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

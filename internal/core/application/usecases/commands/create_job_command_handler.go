package commands

import (
	"context"
	"errors"

	"workforce/internal/core/domain/model/audit"
	"workforce/internal/core/domain/model/job"
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/services"
	"workforce/internal/pkg/errs"
)

// CreateJobCommandHandler handles job posting.
//
// The requester is looked up and checked against the posting policy, the
// spatial cell is derived from the coordinates, and the job row plus its
// audit entry are committed in one transaction so the trail can never
// silently miss a posting.
type CreateJobCommandHandler struct {
	uowFactory    JobUoWFactory
	postingPolicy services.PostingPolicy
}

// NewCreateJobCommandHandler creates a handler for job posting.
func NewCreateJobCommandHandler(
	uowFactory JobUoWFactory,
	postingPolicy services.PostingPolicy,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory:    uowFactory,
		postingPolicy: postingPolicy,
	}
}

// Handle processes the job posting command and returns the spatial cell
// the job was indexed under.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (kernel.CellID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.CellID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.CellID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requester, err := uow.UserRepository().Get(ctx, cmd.RequesterID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.CellID{}, errs.NewUnauthorizedErrorWithCause("only employers can create jobs", err)
		}
		return kernel.CellID{}, err
	}

	if err = h.postingPolicy.AuthorizeJobPosting(requester, cmd.EmployerID()); err != nil {
		return kernel.CellID{}, err
	}

	newJob, err := job.NewJob(cmd.JobID(), cmd.Title(), cmd.Description(), cmd.Position(), cmd.EmployerID())
	if err != nil {
		return kernel.CellID{}, err
	}

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return kernel.CellID{}, err
	}

	requesterID := cmd.RequesterID()
	entry, err := audit.NewEntry(audit.TableJobs, audit.ActionCreate, newJob.ID(), &requesterID)
	if err != nil {
		return kernel.CellID{}, err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return kernel.CellID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.CellID{}, err
	}

	return newJob.Cell(), nil
}

package commands

import (
	"context"

	"workforce/internal/core/domain/model/audit"
)

// DeleteJobCommandHandler handles job removal. The store cascades the
// deletion to applications and the summary row; the audit entry survives
// because it references the job by bare identifier.
type DeleteJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteJobCommandHandler creates a handler for job removal.
func NewDeleteJobCommandHandler(uowFactory UoWFactory) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job deletion command.
func (h *DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JobRepository().Delete(ctx, cmd.JobID()); err != nil {
		return err
	}

	requesterID := cmd.RequesterID()
	entry, err := audit.NewEntry(audit.TableJobs, audit.ActionDelete, cmd.JobID(), &requesterID)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

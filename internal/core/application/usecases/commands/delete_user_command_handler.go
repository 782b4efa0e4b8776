package commands

import (
	"context"

	"workforce/internal/core/domain/model/audit"
)

// DeleteUserCommandHandler handles user removal.
// The audit entry is appended before the row is deleted so that a user
// deleting themselves does not trip the actor foreign key; the store then
// nulls the actor reference as part of the cascade.
type DeleteUserCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user removal.
func NewDeleteUserCommandHandler(uowFactory UoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user deletion command.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	requesterID := cmd.RequesterID()
	entry, err := audit.NewEntry(audit.TableUsers, audit.ActionDelete, cmd.UserID(), &requesterID)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

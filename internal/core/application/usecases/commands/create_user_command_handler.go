package commands

import (
	"context"

	"workforce/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles user registration.
// Duplicate usernames or emails surface as ConstraintViolationError from
// the store; nothing is retried.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

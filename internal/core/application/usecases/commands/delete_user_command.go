package commands

import (
	"errors"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove a user.
// The store cascades the deletion to the user's jobs and applications.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete a user.
// requesterID is recorded as the audit actor.
func NewDeleteUserCommand(userID, requesterID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRequesterID(requesterID),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to delete.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

// RequesterID returns the requesting user's identifier.
func (c DeleteUserCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *DeleteUserCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	return nil
}

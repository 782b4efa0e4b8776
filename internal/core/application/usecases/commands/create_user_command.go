package commands

import (
	"errors"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"
	"workforce/internal/pkg/errs"
	"workforce/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a marketplace
// participant with a given role.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	email    string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// Validates that the ID is valid, username and email are not empty and the
// role is one of the defined values.
func NewCreateUserCommand(userID kernel.UUID, username, email string, role user.Role) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested unique username.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Email returns the requested unique email.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Role returns the requested role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

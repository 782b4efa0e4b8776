package user

import (
	"errors"
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is the aggregate root for marketplace participants.
//
// Invariants:
//   - valid unique identifier
//   - non-empty username and email (uniqueness is enforced by the store)
//   - role is one of the defined values
//   - immutable after construction: no update path exists
type User struct {
	id        kernel.UUID
	username  string
	email     string
	role      Role
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a user with the creation timestamp set to now (UTC).
func NewUser(id kernel.UUID, username, email string, role Role) (*User, error) {
	return RestoreUser(id, username, email, role, time.Now().UTC())
}

// RestoreUser reconstructs a user from persistence with its original
// creation timestamp. All invariants are re-checked.
func RestoreUser(id kernel.UUID, username, email string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique username.
func (u *User) Username() string {
	return u.username
}

// Email returns the unique email address.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the creation timestamp (UTC).
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

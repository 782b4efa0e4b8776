package ports

import (
	"context"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Duplicate usernames or emails surface as
	// ConstraintViolationError.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	// Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Delete removes a user. The store cascades to the user's jobs and
	// applications. Returns ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"workforce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, narrowed to the repositories each command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within
	// a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobRepoFactory provides access to the job repository within
	// a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// ApplicationRepoFactory provides access to the application repository
	// within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// AuditRepoFactory provides access to the audit repository within
	// a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// JobUoW manages transactions for job creation: requester lookup,
	// job write and audit entry share one transaction.
	JobUoW interface {
		TxManager
		UserRepoFactory
		JobRepoFactory
		AuditRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// ApplicationUoW manages transactions for application intake: the
	// application row, the summary increment and the audit entry share
	// one transaction.
	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
		AuditRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// UoW manages transactions across all repositories.
	// Used by deletion commands, which pair a repository delete with an
	// audit entry.
	UoW interface {
		TxManager
		UserRepoFactory
		JobRepoFactory
		ApplicationRepoFactory
		AuditRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)

package commands

import (
	"errors"

	"workforce/internal/pkg/guard"
)

// ReconcileSummariesCommand triggers a rebuild of the per-job application
// summaries from the application rows. The summaries are maintained
// incrementally on every apply; the rebuild repairs any drift.
//
// Example:
//
//	cmd := NewReconcileSummariesCommand()
//	handler := NewReconcileSummariesCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Summary reconciliation failed: %v", err)
//	}
type ReconcileSummariesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrReconcileSummariesCommandIsNotConstructed = errors.New(
		"ReconcileSummariesCommand must be created via NewReconcileSummariesCommand constructor",
	)
)

// NewReconcileSummariesCommand creates a command to rebuild the summaries.
// This is a parameterless command that processes all jobs.
func NewReconcileSummariesCommand() ReconcileSummariesCommand {
	command := ReconcileSummariesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileSummariesCommandIsNotConstructed if validation fails.
func (c *ReconcileSummariesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileSummariesCommandIsNotConstructed)
}

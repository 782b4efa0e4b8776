package commands

import (
	"context"
)

// ReconcileSummariesCommandHandler rebuilds the application summaries
// from the application rows in a single transaction.
type ReconcileSummariesCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewReconcileSummariesCommandHandler creates a handler for summary
// reconciliation.
func NewReconcileSummariesCommandHandler(uowFactory ApplicationUoWFactory) ReconcileSummariesCommandHandler {
	return ReconcileSummariesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h *ReconcileSummariesCommandHandler) Handle(ctx context.Context, cmd ReconcileSummariesCommand) error {
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

	if err := uow.ApplicationRepository().RebuildSummaries(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"log/slog"

	"workforce/internal/core/domain/model/application"
	"workforce/internal/core/domain/model/audit"
	"workforce/internal/core/ports"
)

// ApplyToJobCommandHandler handles application intake.
//
// The application row, the atomic summary increment and the audit entry are
// committed in one transaction. After a successful commit the
// application-submitted event is published best-effort: a publish failure
// is logged and never fails the operation.
type ApplyToJobCommandHandler struct {
	uowFactory ApplicationUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewApplyToJobCommandHandler creates a handler for application intake.
func NewApplyToJobCommandHandler(
	uowFactory ApplicationUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ApplyToJobCommandHandler {
	return ApplyToJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "apply_to_job_handler"),
	}
}

// Handle processes the application command.
func (h *ApplyToJobCommandHandler) Handle(ctx context.Context, cmd ApplyToJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newApplication, err := application.NewApplication(cmd.ApplicationID(), cmd.ApplicantID(), cmd.JobID())
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

	applicationRepo := uow.ApplicationRepository()
	if err = applicationRepo.Add(ctx, newApplication); err != nil {
		return err
	}

	if err = applicationRepo.IncrementSummary(ctx, newApplication.JobID(), newApplication.AppliedAt()); err != nil {
		return err
	}

	// The audit record references the job, not the application.
	applicantID := cmd.ApplicantID()
	entry, err := audit.NewEntry(audit.TableApplications, audit.ActionCreate, newApplication.JobID(), &applicantID)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if publishErr := h.publisher.PublishApplicationSubmitted(ctx, application.NewSubmittedEvent(newApplication)); publishErr != nil {
		h.logger.WarnContext(ctx, "Failed to publish application-submitted event",
			"error", publishErr,
			"application_id", newApplication.ID().String(),
			"job_id", newApplication.JobID().String(),
		)
	}

	return nil
}

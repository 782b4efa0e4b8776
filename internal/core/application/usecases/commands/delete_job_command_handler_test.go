package commands_test

import (
	"testing"

	"workforce/internal/core/application/usecases/commands"
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	cmd, err := commands.NewDeleteJobCommand(jobID, requesterID)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Delete", mock.Anything, jobID).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	jobRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteJobCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewDeleteJobCommand(jobID, kernel.NewUUID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Delete", mock.Anything, jobID).
			Return(errs.NewObjectNotFoundError("jobID", jobID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteJobCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteJobCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewDeleteJobCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteJobCommandIsNotConstructed)
}

package commands_test

import (
	"testing"

	"workforce/internal/core/application/usecases/commands"
	"workforce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyToJobCommand_ValidInput(t *testing.T) {
	applicationID := kernel.NewUUID()
	applicantID := kernel.NewUUID()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewApplyToJobCommand(applicationID, applicantID, jobID)
	require.NoError(t, err)
	assert.Equal(t, applicationID, cmd.ApplicationID())
	assert.Equal(t, applicantID, cmd.ApplicantID())
	assert.Equal(t, jobID, cmd.JobID())
}

func TestNewApplyToJobCommand_InvalidApplicantID(t *testing.T) {
	_, err := commands.NewApplyToJobCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewApplyToJobCommand_InvalidJobID(t *testing.T) {
	_, err := commands.NewApplyToJobCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

package commands_test

import (
	"testing"

	"workforce/internal/core/application/usecases/commands"
	"workforce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteJobCommand_ValidInput(t *testing.T) {
	jobID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	cmd, err := commands.NewDeleteJobCommand(jobID, requesterID)
	require.NoError(t, err)
	assert.Equal(t, jobID, cmd.JobID())
	assert.Equal(t, requesterID, cmd.RequesterID())
}

func TestNewDeleteJobCommand_InvalidJobID(t *testing.T) {
	_, err := commands.NewDeleteJobCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeleteJobCommand_InvalidRequesterID(t *testing.T) {
	_, err := commands.NewDeleteJobCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

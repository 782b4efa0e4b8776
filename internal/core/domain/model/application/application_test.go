package application_test

import (
	"testing"
	"time"

	"workforce/internal/core/domain/model/application"
	"workforce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		applicantID := kernel.NewUUID()
		jobID := kernel.NewUUID()

		a, err := application.NewApplication(id, applicantID, jobID)
		require.NoError(t, err)

		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.ApplicantID().IsEqual(applicantID))
		assert.True(t, a.JobID().IsEqual(jobID))
		assert.Equal(t, application.Pending, a.Status())
		assert.False(t, a.AppliedAt().IsZero())
		require.NoError(t, a.Validate())
	})

	t.Run("invalid_ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := application.NewApplication(zero, kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)

		_, err = application.NewApplication(kernel.NewUUID(), zero, kernel.NewUUID())
		require.Error(t, err)

		_, err = application.NewApplication(kernel.NewUUID(), kernel.NewUUID(), zero)
		require.Error(t, err)
	})

	t.Run("duplicate_pair_is_allowed", func(t *testing.T) {
		applicantID := kernel.NewUUID()
		jobID := kernel.NewUUID()

		first, err := application.NewApplication(kernel.NewUUID(), applicantID, jobID)
		require.NoError(t, err)
		second, err := application.NewApplication(kernel.NewUUID(), applicantID, jobID)
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
	})
}

func TestRestoreApplication(t *testing.T) {
	appliedAt := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)
	a, err := application.RestoreApplication(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), application.Accepted, appliedAt)
	require.NoError(t, err)
	assert.Equal(t, application.Accepted, a.Status())
	assert.Equal(t, appliedAt, a.AppliedAt())

	_, err = application.RestoreApplication(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), application.Unknown, appliedAt)
	require.Error(t, err)
}

func TestApplication_Validate_NotConstructed(t *testing.T) {
	var a application.Application
	assert.ErrorIs(t, a.Validate(), application.ErrApplicationIsNotConstructed)
}

func TestRestoreSummary(t *testing.T) {
	jobID := kernel.NewUUID()
	lastAppliedAt := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)

	s, err := application.RestoreSummary(jobID, 3, lastAppliedAt)
	require.NoError(t, err)
	assert.True(t, s.JobID().IsEqual(jobID))
	assert.Equal(t, 3, s.TotalApplications())
	assert.Equal(t, lastAppliedAt, s.LastAppliedAt())

	_, err = application.RestoreSummary(jobID, -1, lastAppliedAt)
	require.Error(t, err)

	var zero kernel.UUID
	_, err = application.RestoreSummary(zero, 1, lastAppliedAt)
	require.Error(t, err)
}

func TestNewSubmittedEvent(t *testing.T) {
	a, err := application.NewApplication(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	evt := application.NewSubmittedEvent(a)
	assert.True(t, evt.ApplicationID.IsEqual(a.ID()))
	assert.True(t, evt.ApplicantID.IsEqual(a.ApplicantID()))
	assert.True(t, evt.JobID.IsEqual(a.JobID()))
	assert.Equal(t, a.AppliedAt(), evt.AppliedAt)
}

package audit_test

import (
	"testing"
	"time"

	"workforce/internal/core/domain/model/audit"
	"workforce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("valid_with_actor", func(t *testing.T) {
		recordID := kernel.NewUUID()
		actor := kernel.NewUUID()

		e, err := audit.NewEntry(audit.TableJobs, audit.ActionCreate, recordID, &actor)
		require.NoError(t, err)

		assert.Equal(t, int64(0), e.Seq())
		assert.Equal(t, audit.TableJobs, e.TableName())
		assert.Equal(t, audit.ActionCreate, e.Action())
		assert.True(t, e.RecordID().IsEqual(recordID))
		require.NotNil(t, e.PerformedBy())
		assert.True(t, e.PerformedBy().IsEqual(actor))
		assert.False(t, e.OccurredAt().IsZero())
	})

	t.Run("valid_without_actor", func(t *testing.T) {
		e, err := audit.NewEntry(audit.TableApplications, audit.ActionCreate, kernel.NewUUID(), nil)
		require.NoError(t, err)
		assert.Nil(t, e.PerformedBy())
	})

	t.Run("missing_table_name", func(t *testing.T) {
		_, err := audit.NewEntry("", audit.ActionCreate, kernel.NewUUID(), nil)
		require.Error(t, err)
	})

	t.Run("invalid_action", func(t *testing.T) {
		_, err := audit.NewEntry(audit.TableJobs, audit.Action("update"), kernel.NewUUID(), nil)
		require.Error(t, err)
	})

	t.Run("invalid_record_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := audit.NewEntry(audit.TableJobs, audit.ActionCreate, zero, nil)
		require.Error(t, err)
	})

	t.Run("invalid_actor_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := audit.NewEntry(audit.TableJobs, audit.ActionCreate, kernel.NewUUID(), &zero)
		require.Error(t, err)
	})
}

func TestRestoreEntry(t *testing.T) {
	occurredAt := time.Date(2025, 2, 10, 16, 45, 0, 0, time.UTC)
	e, err := audit.RestoreEntry(42, audit.TableJobs, audit.ActionDelete, kernel.NewUUID(), nil, occurredAt)
	require.NoError(t, err)
	assert.Equal(t, int64(42), e.Seq())
	assert.Equal(t, audit.ActionDelete, e.Action())
	assert.Equal(t, occurredAt, e.OccurredAt())
}

func TestEntry_Validate_NotConstructed(t *testing.T) {
	var e audit.Entry
	assert.ErrorIs(t, e.Validate(), audit.ErrEntryIsNotConstructed)
}

func TestAction_Validate(t *testing.T) {
	require.NoError(t, audit.ActionCreate.Validate())
	require.NoError(t, audit.ActionDelete.Validate())
	require.Error(t, audit.Action("drop").Validate())
	require.Error(t, audit.Action("").Validate())
}

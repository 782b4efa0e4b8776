package auditrepo

import (
	"testing"
	"time"

	"workforce/internal/core/domain/model/audit"
	"workforce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogDTO_RoundTrip(t *testing.T) {
	actorID := kernel.NewUUID()
	recordID := kernel.NewUUID()

	entry, err := audit.NewEntry(audit.TableJobs, audit.ActionCreate, recordID, &actorID)
	require.NoError(t, err)

	dto := fromDomain(entry)
	dto.ID = 7 // the store assigns the sequence on insert

	restored, err := toDomain(dto)
	require.NoError(t, err)

	assert.Equal(t, int64(7), restored.Seq())
	assert.Equal(t, audit.TableJobs, restored.TableName())
	assert.Equal(t, audit.ActionCreate, restored.Action())
	assert.Equal(t, recordID.String(), restored.RecordID().String())
	require.NotNil(t, restored.PerformedBy())
	assert.Equal(t, actorID.String(), restored.PerformedBy().String())
	assert.True(t, entry.OccurredAt().Equal(restored.OccurredAt()))
}

func TestAuditLogDTO_RoundTrip_NulledActor(t *testing.T) {
	entry, err := audit.NewEntry(audit.TableUsers, audit.ActionDelete, kernel.NewUUID(), nil)
	require.NoError(t, err)

	dto := fromDomain(entry)
	dto.ID = 1
	dto.OccurredAt = time.Now().UTC()

	restored, err := toDomain(dto)
	require.NoError(t, err)
	assert.Nil(t, restored.PerformedBy())
}

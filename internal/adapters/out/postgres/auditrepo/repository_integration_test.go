package auditrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"workforce/internal/adapters/out/postgres/applicationrepo"
	"workforce/internal/adapters/out/postgres/auditrepo"
	"workforce/internal/adapters/out/postgres/jobrepo"
	"workforce/internal/adapters/out/postgres/userrepo"
	"workforce/internal/core/domain/model/audit"
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// AuditRepositoryIntegrationTestSuite verifies the append-only audit trail
// against a real PostgreSQL instance: sequence assignment and the survival
// of entries across user deletion.
type AuditRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *auditrepo.GormAuditRepository
}

func (suite *AuditRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&userrepo.UserDTO{},
		&jobrepo.JobDTO{},
		&applicationrepo.ApplicationDTO{},
		&applicationrepo.SummaryDTO{},
		&auditrepo.AuditLogDTO{},
	))
}

func (suite *AuditRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, jobs, applications, job_applications_summary, audit_log CASCADE").Error)

	suite.repository = auditrepo.NewGormAuditRepository(suite.db)
}

func (suite *AuditRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuditRepositoryIntegrationTestSuite) TestAppend_AssignsIncreasingSequence() {
	ctx := context.Background()

	for range 3 {
		entry, err := audit.NewEntry(audit.TableJobs, audit.ActionCreate, kernel.NewUUID(), nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Append(ctx, entry))
	}

	var dtos []auditrepo.AuditLogDTO
	suite.Require().NoError(suite.db.Order("id").Find(&dtos).Error)
	suite.Require().Len(dtos, 3)
	suite.Less(dtos[0].ID, dtos[1].ID)
	suite.Less(dtos[1].ID, dtos[2].ID)
}

func (suite *AuditRepositoryIntegrationTestSuite) TestAppend_NilActor_Allowed() {
	ctx := context.Background()

	entry, err := audit.NewEntry(audit.TableUsers, audit.ActionDelete, kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(ctx, entry))

	var dto auditrepo.AuditLogDTO
	suite.Require().NoError(suite.db.First(&dto).Error)
	suite.Nil(dto.PerformedBy)
}

func (suite *AuditRepositoryIntegrationTestSuite) TestAppend_ActorDeleted_ReferenceNulledNotCascaded() {
	ctx := context.Background()

	actor, err := user.NewUser(kernel.NewUUID(), "alice", "alice@example.com", user.Admin)
	suite.Require().NoError(err)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	userRepo := userrepo.NewGormUserRepository(suite.db, tracker)
	suite.Require().NoError(userRepo.Add(ctx, actor))

	actorID := actor.ID()
	entry, err := audit.NewEntry(audit.TableUsers, audit.ActionCreate, actorID, &actorID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(ctx, entry))

	suite.Require().NoError(userRepo.Delete(ctx, actorID))

	var dtos []auditrepo.AuditLogDTO
	suite.Require().NoError(suite.db.Find(&dtos).Error)
	suite.Require().Len(dtos, 1)
	suite.Nil(dtos[0].PerformedBy)
	suite.Equal(actorID.Bytes(), dtos[0].RecordID)
}

func (suite *AuditRepositoryIntegrationTestSuite) TestAppend_UnknownActor_ConstraintViolation() {
	ctx := context.Background()

	ghost := kernel.NewUUID()
	entry, err := audit.NewEntry(audit.TableUsers, audit.ActionCreate, kernel.NewUUID(), &ghost)
	suite.Require().NoError(err)

	err = suite.repository.Append(ctx, entry)
	suite.Require().Error(err)
}

func TestAuditRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuditRepositoryIntegrationTestSuite))
}

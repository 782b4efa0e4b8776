package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "workforce/internal/adapters/in/http"
	"workforce/internal/core/application/usecases/commands"
	"workforce/internal/core/application/usecases/queries"
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"
	"workforce/internal/core/ports"
	"workforce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepository struct{}

func (stubUserRepository) Add(_ context.Context, _ *user.User) error {
	return nil
}

func (stubUserRepository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	return nil, errs.NewObjectNotFoundError("userID", id)
}

func (stubUserRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return nil
}

type stubUserUoW struct{}

func (stubUserUoW) Begin(_ context.Context) error    { return nil }
func (stubUserUoW) Commit(_ context.Context) error   { return nil }
func (stubUserUoW) Rollback(_ context.Context) error { return nil }

func (stubUserUoW) UserRepository() ports.UserRepository {
	return stubUserRepository{}
}

type stubUserUoWFactory struct{}

func (stubUserUoWFactory) Create() commands.UserUoW {
	return stubUserUoW{}
}

func newUserTestServer() *echo.Echo {
	server := httpadapter.NewServer(
		commands.NewCreateUserCommandHandler(stubUserUoWFactory{}),
		commands.CreateJobCommandHandler{},
		commands.ApplyToJobCommandHandler{},
		commands.DeleteUserCommandHandler{},
		commands.DeleteJobCommandHandler{},
		queries.ListJobsQueryHandler{},
		queries.JobsByCellQueryHandler{},
		queries.AuditLogQueryHandler{},
		queries.JobSummaryQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func TestCreateUser_ResponseCarriesIdentityFields(t *testing.T) {
	e := newUserTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","role":"employer"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "employer", body["role"])
}

func TestCreateUser_InvalidRole_BadRequest(t *testing.T) {
	e := newUserTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
		strings.NewReader(`{"username":"bob","email":"bob@example.com","role":"overlord"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
}

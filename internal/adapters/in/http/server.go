// Package http exposes the marketplace operations over a thin echo adapter.
// Handlers translate between the wire format and commands/queries; every
// error leaves as a JSON envelope with the taxonomy mapped onto HTTP status
// codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"workforce/internal/core/application/usecases/commands"
	"workforce/internal/core/application/usecases/queries"
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"
	"workforce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createUserHandler commands.CreateUserCommandHandler
	createJobHandler  commands.CreateJobCommandHandler
	applyHandler      commands.ApplyToJobCommandHandler
	deleteUserHandler commands.DeleteUserCommandHandler
	deleteJobHandler  commands.DeleteJobCommandHandler

	// Query handlers
	listJobsHandler   queries.ListJobsQueryHandler
	jobsByCellHandler queries.JobsByCellQueryHandler
	auditLogHandler   queries.AuditLogQueryHandler
	jobSummaryHandler queries.JobSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createUserHandler commands.CreateUserCommandHandler,
	createJobHandler commands.CreateJobCommandHandler,
	applyHandler commands.ApplyToJobCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	deleteJobHandler commands.DeleteJobCommandHandler,
	listJobsHandler queries.ListJobsQueryHandler,
	jobsByCellHandler queries.JobsByCellQueryHandler,
	auditLogHandler queries.AuditLogQueryHandler,
	jobSummaryHandler queries.JobSummaryQueryHandler,
) *Server {
	return &Server{
		createUserHandler: createUserHandler,
		createJobHandler:  createJobHandler,
		applyHandler:      applyHandler,
		deleteUserHandler: deleteUserHandler,
		deleteJobHandler:  deleteJobHandler,
		listJobsHandler:   listJobsHandler,
		jobsByCellHandler: jobsByCellHandler,
		auditLogHandler:   auditLogHandler,
		jobSummaryHandler: jobSummaryHandler,
	}
}

// RegisterRoutes attaches all marketplace routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/users", s.CreateUser)
	v1.DELETE("/users/:userId", s.DeleteUser)
	v1.POST("/jobs", s.CreateJob)
	v1.GET("/jobs", s.ListJobs)
	v1.DELETE("/jobs/:jobId", s.DeleteJob)
	v1.GET("/jobs/cell/:cellId", s.JobsByCell)
	v1.GET("/jobs/:jobId/summary", s.JobSummary)
	v1.POST("/applications", s.ApplyToJob)
	v1.GET("/audit", s.AuditLog)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JobResponse is the wire form of a job posting.
type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Cell        string    `json:"cell"`
	EmployerID  string    `json:"employerId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuditEntryResponse is the wire form of one audit trail entry.
type AuditEntryResponse struct {
	Seq         int64     `json:"seq"`
	TableName   string    `json:"tableName"`
	Action      string    `json:"action"`
	RecordID    string    `json:"recordId"`
	PerformedBy *string   `json:"performedBy"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateUser handles POST /api/v1/users - registers a marketplace user.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(userID, req.Username, req.Email, role)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	if err = s.createUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id":       userID.String(),
		"username": req.Username,
		"role":     role.String(),
	})
}

// DeleteUser handles DELETE /api/v1/users/:userId - removes a user and
// everything the schema cascades from it.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	requesterID, err := kernel.UUIDFromString(ctx.QueryParam("requesterId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "requesterId query parameter is required")
	}

	cmd, err := commands.NewDeleteUserCommand(userID, requesterID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	if err = s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateJob handles POST /api/v1/jobs - posts a job at a geographic
// position and returns the spatial cell it was indexed under.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		EmployerID  string  `json:"employerId"`
		RequesterID string  `json:"requesterId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	employerID, err := kernel.UUIDFromString(req.EmployerID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	requesterID := employerID
	if req.RequesterID != "" {
		if requesterID, err = kernel.UUIDFromString(req.RequesterID); err != nil {
			return taxonomyJSON(ctx, err)
		}
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(
		jobID, req.Title, req.Description, req.Latitude, req.Longitude, employerID, requesterID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	cell, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id":   jobID.String(),
		"cell": cell.String(),
	})
}

// DeleteJob handles DELETE /api/v1/jobs/:jobId.
func (s *Server) DeleteJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	requesterID, err := kernel.UUIDFromString(ctx.QueryParam("requesterId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "requesterId query parameter is required")
	}

	cmd, err := commands.NewDeleteJobCommand(jobID, requesterID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	if err = s.deleteJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyToJob handles POST /api/v1/applications - records a worker's
// application to a job.
func (s *Server) ApplyToJob(ctx echo.Context) error {
	var req struct {
		ApplicantID string `json:"applicantId"`
		JobID       string `json:"jobId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	applicantID, err := kernel.UUIDFromString(req.ApplicantID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	applicationID := kernel.NewUUID()
	cmd, err := commands.NewApplyToJobCommand(applicationID, applicantID, jobID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	if err = s.applyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": applicationID.String()})
}

// ListJobs handles GET /api/v1/jobs - retrieves all job postings.
func (s *Server) ListJobs(ctx echo.Context) error {
	jobs, err := s.listJobsHandler.Handle(ctx.Request().Context(), queries.NewListJobsQuery())
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobsToWire(jobs))
}

// JobsByCell handles GET /api/v1/jobs/cell/:cellId - retrieves the jobs
// indexed under one spatial cell. The match is exact.
func (s *Server) JobsByCell(ctx echo.Context) error {
	cell, err := kernel.CellIDFromString(ctx.Param("cellId"))
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	query, err := queries.NewJobsByCellQuery(cell)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	jobs, err := s.jobsByCellHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobsToWire(jobs))
}

// JobSummary handles GET /api/v1/jobs/:jobId/summary.
func (s *Server) JobSummary(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	query, err := queries.NewJobSummaryQuery(jobID)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	summary, err := s.jobSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"jobId":             summary.JobID.String(),
		"totalApplications": summary.TotalApplications,
		"lastAppliedAt":     summary.LastAppliedAt,
	})
}

// AuditLog handles GET /api/v1/audit - retrieves the audit trail in
// creation order.
func (s *Server) AuditLog(ctx echo.Context) error {
	entries, err := s.auditLogHandler.Handle(ctx.Request().Context(), queries.NewAuditLogQuery())
	if err != nil {
		return taxonomyJSON(ctx, err)
	}

	response := make([]AuditEntryResponse, len(entries))
	for i, entry := range entries {
		var performedBy *string
		if entry.PerformedBy != nil {
			actor := entry.PerformedBy.String()
			performedBy = &actor
		}

		response[i] = AuditEntryResponse{
			Seq:         entry.Seq,
			TableName:   entry.TableName,
			Action:      entry.Action,
			RecordID:    entry.RecordID.String(),
			PerformedBy: performedBy,
			OccurredAt:  entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func jobsToWire(jobs []queries.JobResponse) []JobResponse {
	response := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		response[i] = JobResponse{
			ID:          job.ID.String(),
			Title:       job.Title,
			Description: job.Description,
			Latitude:    job.Position.Latitude(),
			Longitude:   job.Position.Longitude(),
			Cell:        job.Cell.String(),
			EmployerID:  job.EmployerID.String(),
			Status:      job.Status,
			CreatedAt:   job.CreatedAt,
		}
	}
	return response
}

// taxonomyJSON maps a taxonomy error onto its HTTP status code.
func taxonomyJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConstraintViolation):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

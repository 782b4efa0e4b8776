package applicationrepo

import (
	"context"
	"errors"
	"time"

	"workforce/internal/adapters/out/postgres/pgerrs"
	"workforce/internal/core/domain/model/application"
	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormApplicationRepository creates a new GORM application repository.
func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new application to the database.
// A dangling applicant or job reference surfaces as ConstraintViolationError.
func (r *GormApplicationRepository) Add(ctx context.Context, entity *application.Application) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err)
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// IncrementSummary bumps the job's application counters in one
// insert-or-increment statement. The increment happens inside the
// database, so concurrent applies to the same job never lose a count.
func (r *GormApplicationRepository) IncrementSummary(ctx context.Context, jobID kernel.UUID, appliedAt time.Time) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	dto := SummaryDTO{
		JobID:             jobID.Bytes(),
		TotalApplications: 1,
		LastAppliedAt:     appliedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_applications": gorm.Expr("job_applications_summary.total_applications + 1"),
			"last_applied_at":    appliedAt,
		}),
	}).Create(&dto).Error
	if err != nil {
		return pgerrs.Translate(err)
	}

	return nil
}

// GetSummary retrieves the job's application counters.
// A job that never received an application has no row.
func (r *GormApplicationRepository) GetSummary(ctx context.Context, jobID kernel.UUID) (application.Summary, error) {
	if err := jobID.Validate(); err != nil {
		return application.Summary{}, err
	}

	var dto SummaryDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return application.Summary{}, errs.NewObjectNotFoundError("jobID", jobID.String())
		}
		return application.Summary{}, err
	}

	return summaryToDomain(dto)
}

// RebuildSummaries recomputes every summary row from the application rows.
// Existing rows are overwritten with the recomputed counters.
func (r *GormApplicationRepository) RebuildSummaries(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO job_applications_summary (job_id, total_applications, last_applied_at)
		SELECT job_id, COUNT(*), MAX(applied_at)
		FROM applications
		GROUP BY job_id
		ON CONFLICT (job_id) DO UPDATE SET
			total_applications = EXCLUDED.total_applications,
			last_applied_at = EXCLUDED.last_applied_at
	`).Error
	if err != nil {
		return pgerrs.Translate(err)
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/jmoiron/sqlx"
)

type ApplicationRepository struct {
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewApplicationRepository(log *slog.Logger) *ApplicationRepository {
	return &ApplicationRepository{
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var housingApplicationColumns = []string{
	"ha.id", "ha.refugee_id", "ha.housing_id", "ha.status", "ha.notes", "ha.application_date", "ha.decision_date",
}

var jobApplicationColumns = []string{
	"ja.id", "ja.refugee_id", "ja.job_id", "ja.status", "ja.cover_letter", "ja.resume", "ja.applied_at",
	"ja.last_updated", "ja.interview_date", "ja.notes",
}

var eventColumns = []string{
	"id", "kind", "application_id", "actor_id", "from_status", "to_status", "created_at",
}

func (ar *ApplicationRepository) CreateHousingApplication(ctx context.Context, tx *sqlx.Tx, a *domain.HousingApplication) error {
	const op = "internal.repository.postgres.CreateHousingApplication"

	query, args, err := ar.sq.Insert("housing_applications").
		Columns("refugee_id", "housing_id", "status", "notes", "application_date").
		Values(a.RefugeeID, a.HousingID, a.Status, a.Notes, a.ApplicationDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&a.ID); err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return &apperrors.DuplicateApplicationError{Kind: string(domain.KindHousing), RefugeeID: a.RefugeeID, TargetID: a.HousingID}
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, apperrors.ErrNotFound, pqConstraint(err))
		}

		return fmt.Errorf("%s: failed to insert housing application: %w", op, err)
	}

	return nil
}

func (ar *ApplicationRepository) GetHousingApplication(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.HousingApplication, error) {
	const op = "internal.repository.postgres.GetHousingApplication"
	return ar.getHousingApplication(ctx, ext, op, id, "")
}

func (ar *ApplicationRepository) GetHousingApplicationForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.HousingApplication, error) {
	const op = "internal.repository.postgres.GetHousingApplicationForUpdate"
	return ar.getHousingApplication(ctx, tx, op, id, "FOR UPDATE")
}

func (ar *ApplicationRepository) getHousingApplication(ctx context.Context, ext sqlx.ExtContext, op string, id int64, suffix string) (*domain.HousingApplication, error) {
	builder := ar.sq.Select(housingApplicationColumns...).From("housing_applications ha").Where(sq.Eq{"ha.id": id})
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var a domain.HousingApplication
	if err := sqlx.GetContext(ctx, ext, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: housing application with id %d", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get housing application: %w", op, err)
	}

	return &a, nil
}

func (ar *ApplicationRepository) UpdateHousingApplicationStatus(ctx context.Context, tx *sqlx.Tx, id int64, status domain.ApplicationStatus, decidedAt time.Time) error {
	const op = "internal.repository.postgres.UpdateHousingApplicationStatus"

	query, args, err := ar.sq.Update("housing_applications").
		Set("status", status).
		Set("decision_date", decidedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("housing application with id %d", id), query, args)
}

func (ar *ApplicationRepository) ListHousingApplications(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.HousingApplication, error) {
	const op = "internal.repository.postgres.ListHousingApplications"

	builder := ar.sq.Select(housingApplicationColumns...).
		From("housing_applications ha").
		OrderBy("ha.application_date DESC", "ha.id")

	if scope.RefugeeID != nil {
		builder = builder.Where(sq.Eq{"ha.refugee_id": *scope.RefugeeID})
	}

	if scope.NGOID != nil {
		builder = builder.Join("housing h ON h.id = ha.housing_id").Where(sq.Eq{"h.ngo_id": *scope.NGOID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	apps := []domain.HousingApplication{}
	if err := sqlx.SelectContext(ctx, ext, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list housing applications: %w", op, err)
	}

	return apps, nil
}

func (ar *ApplicationRepository) CreateJobApplication(ctx context.Context, tx *sqlx.Tx, a *domain.JobApplication) error {
	const op = "internal.repository.postgres.CreateJobApplication"

	query, args, err := ar.sq.Insert("job_applications").
		Columns("refugee_id", "job_id", "status", "cover_letter", "resume", "applied_at", "last_updated").
		Values(a.RefugeeID, a.JobID, a.Status, a.CoverLetter, a.Resume, a.AppliedAt, a.LastUpdated).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&a.ID); err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return &apperrors.DuplicateApplicationError{Kind: string(domain.KindJob), RefugeeID: a.RefugeeID, TargetID: a.JobID}
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, apperrors.ErrNotFound, pqConstraint(err))
		}

		return fmt.Errorf("%s: failed to insert job application: %w", op, err)
	}

	return nil
}

func (ar *ApplicationRepository) GetJobApplication(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.JobApplication, error) {
	const op = "internal.repository.postgres.GetJobApplication"
	return ar.getJobApplication(ctx, ext, op, id, "")
}

func (ar *ApplicationRepository) GetJobApplicationForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.JobApplication, error) {
	const op = "internal.repository.postgres.GetJobApplicationForUpdate"
	return ar.getJobApplication(ctx, tx, op, id, "FOR UPDATE")
}

func (ar *ApplicationRepository) getJobApplication(ctx context.Context, ext sqlx.ExtContext, op string, id int64, suffix string) (*domain.JobApplication, error) {
	builder := ar.sq.Select(jobApplicationColumns...).From("job_applications ja").Where(sq.Eq{"ja.id": id})
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var a domain.JobApplication
	if err := sqlx.GetContext(ctx, ext, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: job application with id %d", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get job application: %w", op, err)
	}

	return &a, nil
}

func (ar *ApplicationRepository) UpdateJobApplication(ctx context.Context, tx *sqlx.Tx, a *domain.JobApplication) error {
	const op = "internal.repository.postgres.UpdateJobApplication"

	query, args, err := ar.sq.Update("job_applications").
		Set("status", a.Status).
		Set("last_updated", a.LastUpdated).
		Set("interview_date", a.InterviewDate).
		Set("notes", a.Notes).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("job application with id %d", a.ID), query, args)
}

func (ar *ApplicationRepository) ListJobApplications(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.JobApplication, error) {
	const op = "internal.repository.postgres.ListJobApplications"

	builder := ar.sq.Select(jobApplicationColumns...).
		From("job_applications ja").
		OrderBy("ja.applied_at DESC", "ja.id")

	if scope.RefugeeID != nil {
		builder = builder.Where(sq.Eq{"ja.refugee_id": *scope.RefugeeID})
	}

	if scope.NGOID != nil {
		builder = builder.Join("jobs j ON j.id = ja.job_id").Where(sq.Eq{"j.ngo_id": *scope.NGOID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	apps := []domain.JobApplication{}
	if err := sqlx.SelectContext(ctx, ext, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list job applications: %w", op, err)
	}

	return apps, nil
}

func (ar *ApplicationRepository) AppendEvent(ctx context.Context, tx *sqlx.Tx, e *domain.ApplicationEvent) error {
	const op = "internal.repository.postgres.AppendEvent"

	query, args, err := ar.sq.Insert("application_events").
		Columns("kind", "application_id", "actor_id", "from_status", "to_status", "created_at").
		Values(e.Kind, e.ApplicationID, e.ActorID, e.FromStatus, e.ToStatus, e.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&e.ID); err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%s: %w: %s application with id %d", op, apperrors.ErrNotFound, e.Kind, e.ApplicationID)
		}

		return fmt.Errorf("%s: failed to insert event: %w", op, err)
	}

	return nil
}

func (ar *ApplicationRepository) ListEvents(ctx context.Context, ext sqlx.ExtContext, kind domain.ApplicationKind, applicationID int64) ([]domain.ApplicationEvent, error) {
	const op = "internal.repository.postgres.ListEvents"

	query, args, err := ar.sq.Select(eventColumns...).
		From("application_events").
		Where(sq.Eq{"kind": kind, "application_id": applicationID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	events := []domain.ApplicationEvent{}
	if err := sqlx.SelectContext(ctx, ext, &events, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list events: %w", op, err)
	}

	return events, nil
}

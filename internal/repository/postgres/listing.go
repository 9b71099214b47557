package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/jmoiron/sqlx"
)

type ListingRepository struct {
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewListingRepository(log *slog.Logger) *ListingRepository {
	return &ListingRepository{
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var housingColumns = []string{
	"id", "ngo_id", "name", "description", "location", "address", "capacity", "current_occupancy",
	"housing_type", "amenities", "status", "cost_per_month", "created_at", "last_updated",
}

var jobColumns = []string{
	"id", "ngo_id", "title", "description", "location", "employer", "job_type", "salary_range",
	"requirements", "benefits", "posted_at", "deadline", "is_active",
}

func (lr *ListingRepository) CreateHousing(ctx context.Context, ext sqlx.ExtContext, h *domain.Housing) error {
	const op = "internal.repository.postgres.CreateHousing"

	query, args, err := lr.sq.Insert("housing").
		Columns(
			"ngo_id", "name", "description", "location", "address", "capacity", "current_occupancy",
			"housing_type", "amenities", "status", "cost_per_month", "created_at", "last_updated",
		).
		Values(
			h.NGOID, h.Name, h.Description, h.Location, h.Address, h.Capacity, h.CurrentOccupancy,
			h.HousingType, h.Amenities, h.Status, h.CostPerMonth, h.CreatedAt, h.LastUpdated,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := sqlx.GetContext(ctx, ext, &h.ID, query, args...); err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%s: %w: ngo with id %d", op, apperrors.ErrNotFound, h.NGOID)
		}

		return fmt.Errorf("%s: failed to insert housing: %w", op, err)
	}

	return nil
}

func (lr *ListingRepository) GetHousing(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Housing, error) {
	const op = "internal.repository.postgres.GetHousing"
	return lr.getHousing(ctx, ext, op, lr.sq.Select(housingColumns...).From("housing").Where(sq.Eq{"id": id}), id)
}

func (lr *ListingRepository) GetHousingForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.Housing, error) {
	const op = "internal.repository.postgres.GetHousingForUpdate"
	return lr.getHousing(ctx, tx, op, lr.sq.Select(housingColumns...).From("housing").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

func (lr *ListingRepository) getHousing(ctx context.Context, ext sqlx.ExtContext, op string, builder sq.SelectBuilder, id int64) (*domain.Housing, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var h domain.Housing
	if err := sqlx.GetContext(ctx, ext, &h, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: housing with id %d", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get housing: %w", op, err)
	}

	return &h, nil
}

func (lr *ListingRepository) UpdateHousing(ctx context.Context, tx *sqlx.Tx, h *domain.Housing) error {
	const op = "internal.repository.postgres.UpdateHousing"

	query, args, err := lr.sq.Update("housing").
		SetMap(map[string]interface{}{
			"name":           h.Name,
			"description":    h.Description,
			"location":       h.Location,
			"address":        h.Address,
			"capacity":       h.Capacity,
			"housing_type":   h.HousingType,
			"amenities":      h.Amenities,
			"status":         h.Status,
			"cost_per_month": h.CostPerMonth,
			"last_updated":   h.LastUpdated,
		}).
		Where(sq.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("housing with id %d", h.ID), query, args)
}

func (lr *ListingRepository) DeleteHousing(ctx context.Context, tx *sqlx.Tx, id int64) error {
	const op = "internal.repository.postgres.DeleteHousing"

	query, args, err := lr.sq.Delete("housing").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("housing with id %d", id), query, args)
}

func (lr *ListingRepository) ListHousing(ctx context.Context, ext sqlx.ExtContext, filter repository.HousingFilter) ([]domain.Housing, error) {
	const op = "internal.repository.postgres.ListHousing"

	builder := lr.sq.Select(housingColumns...).From("housing").OrderBy("id")

	if filter.NGOID != nil {
		builder = builder.Where(sq.Eq{"ngo_id": *filter.NGOID})
	}

	if filter.AvailableOnly {
		builder = builder.Where(sq.Eq{"status": domain.HousingAvailable}).Where("current_occupancy < capacity")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	units := []domain.Housing{}
	if err := sqlx.SelectContext(ctx, ext, &units, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list housing: %w", op, err)
	}

	return units, nil
}

func (lr *ListingRepository) SetOccupancy(ctx context.Context, tx *sqlx.Tx, housingID int64, expected, occupancy int, status domain.HousingStatus) (bool, error) {
	const op = "internal.repository.postgres.SetOccupancy"

	query, args, err := lr.sq.Update("housing").
		Set("current_occupancy", occupancy).
		Set("status", status).
		Set("last_updated", sq.Expr("NOW()")).
		Where(sq.Eq{"id": housingID, "current_occupancy": expected}).
		Where(sq.Expr("? <= capacity", occupancy)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if pqCode(err) == codeCheckViolation {
			return false, nil
		}

		return false, fmt.Errorf("%s: failed to update occupancy: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: failed to read affected rows: %w", op, err)
	}

	return rows == 1, nil
}

func (lr *ListingRepository) CreateJob(ctx context.Context, ext sqlx.ExtContext, j *domain.Job) error {
	const op = "internal.repository.postgres.CreateJob"

	query, args, err := lr.sq.Insert("jobs").
		Columns(
			"ngo_id", "title", "description", "location", "employer", "job_type", "salary_range",
			"requirements", "benefits", "posted_at", "deadline", "is_active",
		).
		Values(
			j.NGOID, j.Title, j.Description, j.Location, j.Employer, j.JobType, j.SalaryRange,
			j.Requirements, j.Benefits, j.PostedAt, j.Deadline, j.IsActive,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := sqlx.GetContext(ctx, ext, &j.ID, query, args...); err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("%s: %w: ngo with id %d", op, apperrors.ErrNotFound, j.NGOID)
		}

		return fmt.Errorf("%s: failed to insert job: %w", op, err)
	}

	return nil
}

func (lr *ListingRepository) GetJob(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Job, error) {
	const op = "internal.repository.postgres.GetJob"
	return lr.getJob(ctx, ext, op, lr.sq.Select(jobColumns...).From("jobs").Where(sq.Eq{"id": id}), id)
}

func (lr *ListingRepository) GetJobForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.Job, error) {
	const op = "internal.repository.postgres.GetJobForUpdate"
	return lr.getJob(ctx, tx, op, lr.sq.Select(jobColumns...).From("jobs").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

func (lr *ListingRepository) getJob(ctx context.Context, ext sqlx.ExtContext, op string, builder sq.SelectBuilder, id int64) (*domain.Job, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var j domain.Job
	if err := sqlx.GetContext(ctx, ext, &j, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: job with id %d", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get job: %w", op, err)
	}

	return &j, nil
}

func (lr *ListingRepository) UpdateJob(ctx context.Context, tx *sqlx.Tx, j *domain.Job) error {
	const op = "internal.repository.postgres.UpdateJob"

	query, args, err := lr.sq.Update("jobs").
		SetMap(map[string]interface{}{
			"title":        j.Title,
			"description":  j.Description,
			"location":     j.Location,
			"employer":     j.Employer,
			"job_type":     j.JobType,
			"salary_range": j.SalaryRange,
			"requirements": j.Requirements,
			"benefits":     j.Benefits,
			"deadline":     j.Deadline,
			"is_active":    j.IsActive,
		}).
		Where(sq.Eq{"id": j.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("job with id %d", j.ID), query, args)
}

func (lr *ListingRepository) DeleteJob(ctx context.Context, tx *sqlx.Tx, id int64) error {
	const op = "internal.repository.postgres.DeleteJob"

	query, args, err := lr.sq.Delete("jobs").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("job with id %d", id), query, args)
}

func (lr *ListingRepository) ListJobs(ctx context.Context, ext sqlx.ExtContext, filter repository.JobFilter) ([]domain.Job, error) {
	const op = "internal.repository.postgres.ListJobs"

	builder := lr.sq.Select(jobColumns...).From("jobs").OrderBy("posted_at DESC", "id")

	if filter.NGOID != nil {
		builder = builder.Where(sq.Eq{"ngo_id": *filter.NGOID})
	}

	if filter.OpenAt != nil {
		builder = builder.Where(sq.Eq{"is_active": true}).Where(sq.GtOrEq{"deadline": *filter.OpenAt})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	jobs := []domain.Job{}
	if err := sqlx.SelectContext(ctx, ext, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list jobs: %w", op, err)
	}

	return jobs, nil
}

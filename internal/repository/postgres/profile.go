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

type ProfileRepository struct {
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewProfileRepository(log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var refugeeColumns = []string{
	"id", "actor_id", "date_of_birth", "gender", "family_size", "country_of_origin", "native_language",
	"education_level", "skills", "medical_conditions", "emergency_contact", "documents", "status",
	"registered_at", "last_updated",
}

var ngoColumns = []string{
	"id", "actor_id", "organization_name", "organization_type", "location", "contact_number", "created_at",
}

func (pr *ProfileRepository) CreateRefugee(ctx context.Context, tx *sqlx.Tx, r *domain.Refugee) error {
	const op = "internal.repository.postgres.CreateRefugee"

	query, args, err := pr.sq.Insert("refugees").
		Columns(
			"actor_id", "date_of_birth", "gender", "family_size", "country_of_origin", "native_language",
			"education_level", "skills", "medical_conditions", "emergency_contact", "documents", "status",
			"registered_at", "last_updated",
		).
		Values(
			r.ActorID, r.DateOfBirth, r.Gender, r.FamilySize, r.CountryOfOrigin, r.NativeLanguage,
			r.EducationLevel, r.Skills, r.MedicalConditions, r.EmergencyContact, r.Documents, r.Status,
			r.RegisteredAt, r.LastUpdated,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&r.ID); err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: refugee profile for actor '%s'", op, apperrors.ErrProfileExists, r.ActorID)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: actor with id '%s'", op, apperrors.ErrNotFound, r.ActorID)
		}

		return fmt.Errorf("%s: failed to insert refugee: %w", op, err)
	}

	return nil
}

func (pr *ProfileRepository) GetRefugee(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Refugee, error) {
	return pr.getRefugee(ctx, ext, "internal.repository.postgres.GetRefugee", sq.Eq{"id": id})
}

func (pr *ProfileRepository) GetRefugeeByActor(ctx context.Context, ext sqlx.ExtContext, actorID string) (*domain.Refugee, error) {
	return pr.getRefugee(ctx, ext, "internal.repository.postgres.GetRefugeeByActor", sq.Eq{"actor_id": actorID})
}

func (pr *ProfileRepository) getRefugee(ctx context.Context, ext sqlx.ExtContext, op string, where sq.Eq) (*domain.Refugee, error) {
	query, args, err := pr.sq.Select(refugeeColumns...).From("refugees").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var r domain.Refugee
	if err := sqlx.GetContext(ctx, ext, &r, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: refugee %v", op, apperrors.ErrNotFound, where)
		}

		return nil, fmt.Errorf("%s: failed to get refugee: %w", op, err)
	}

	return &r, nil
}

func (pr *ProfileRepository) UpdateRefugee(ctx context.Context, tx *sqlx.Tx, r *domain.Refugee) error {
	const op = "internal.repository.postgres.UpdateRefugee"

	query, args, err := pr.sq.Update("refugees").
		SetMap(map[string]interface{}{
			"date_of_birth":      r.DateOfBirth,
			"gender":             r.Gender,
			"family_size":        r.FamilySize,
			"country_of_origin":  r.CountryOfOrigin,
			"native_language":    r.NativeLanguage,
			"education_level":    r.EducationLevel,
			"skills":             r.Skills,
			"medical_conditions": r.MedicalConditions,
			"emergency_contact":  r.EmergencyContact,
			"documents":          r.Documents,
			"last_updated":       r.LastUpdated,
		}).
		Where(sq.Eq{"id": r.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("refugee with id %d", r.ID), query, args)
}

func (pr *ProfileRepository) SetRefugeeStatus(ctx context.Context, tx *sqlx.Tx, id int64, status domain.RegistrationStatus, at time.Time) error {
	const op = "internal.repository.postgres.SetRefugeeStatus"

	query, args, err := pr.sq.Update("refugees").
		Set("status", status).
		Set("last_updated", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("refugee with id %d", id), query, args)
}

func (pr *ProfileRepository) ListRefugees(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.Refugee, error) {
	const op = "internal.repository.postgres.ListRefugees"

	builder := pr.sq.Select(refugeeColumns...).From("refugees").OrderBy("id")

	if scope.RefugeeID != nil {
		builder = builder.Where(sq.Eq{"id": *scope.RefugeeID})
	}

	if scope.NGOID != nil {
		builder = builder.Where(sq.Expr(`id IN (
			SELECT ha.refugee_id FROM housing_applications ha JOIN housing h ON h.id = ha.housing_id WHERE h.ngo_id = ?
			UNION
			SELECT ja.refugee_id FROM job_applications ja JOIN jobs j ON j.id = ja.job_id WHERE j.ngo_id = ?
		)`, *scope.NGOID, *scope.NGOID))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	refugees := []domain.Refugee{}
	if err := sqlx.SelectContext(ctx, ext, &refugees, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list refugees: %w", op, err)
	}

	return refugees, nil
}

func (pr *ProfileRepository) LinkedNGOIDs(ctx context.Context, ext sqlx.ExtContext, refugeeID int64) ([]int64, error) {
	const op = "internal.repository.postgres.LinkedNGOIDs"

	query, args, err := pr.sq.Select("h.ngo_id").
		From("housing_applications ha").
		Join("housing h ON h.id = ha.housing_id").
		Where(sq.Eq{"ha.refugee_id": refugeeID}).
		Suffix("UNION SELECT j.ngo_id FROM job_applications ja JOIN jobs j ON j.id = ja.job_id WHERE ja.refugee_id = ?", refugeeID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var ids []int64
	if err := sqlx.SelectContext(ctx, ext, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to list linked ngos: %w", op, err)
	}

	return ids, nil
}

func (pr *ProfileRepository) CreateNGO(ctx context.Context, tx *sqlx.Tx, n *domain.NGO) error {
	const op = "internal.repository.postgres.CreateNGO"

	query, args, err := pr.sq.Insert("ngos").
		Columns("actor_id", "organization_name", "organization_type", "location", "contact_number", "created_at").
		Values(n.ActorID, n.OrganizationName, n.OrganizationType, n.Location, n.ContactNumber, n.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&n.ID); err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: ngo profile for actor '%s'", op, apperrors.ErrProfileExists, n.ActorID)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: actor with id '%s'", op, apperrors.ErrNotFound, n.ActorID)
		}

		return fmt.Errorf("%s: failed to insert ngo: %w", op, err)
	}

	return nil
}

func (pr *ProfileRepository) GetNGO(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.NGO, error) {
	return pr.getNGO(ctx, ext, "internal.repository.postgres.GetNGO", sq.Eq{"id": id})
}

func (pr *ProfileRepository) GetNGOByActor(ctx context.Context, ext sqlx.ExtContext, actorID string) (*domain.NGO, error) {
	return pr.getNGO(ctx, ext, "internal.repository.postgres.GetNGOByActor", sq.Eq{"actor_id": actorID})
}

func (pr *ProfileRepository) getNGO(ctx context.Context, ext sqlx.ExtContext, op string, where sq.Eq) (*domain.NGO, error) {
	query, args, err := pr.sq.Select(ngoColumns...).From("ngos").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var n domain.NGO
	if err := sqlx.GetContext(ctx, ext, &n, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: ngo %v", op, apperrors.ErrNotFound, where)
		}

		return nil, fmt.Errorf("%s: failed to get ngo: %w", op, err)
	}

	return &n, nil
}

func (pr *ProfileRepository) UpdateNGO(ctx context.Context, tx *sqlx.Tx, n *domain.NGO) error {
	const op = "internal.repository.postgres.UpdateNGO"

	query, args, err := pr.sq.Update("ngos").
		Set("organization_name", n.OrganizationName).
		Set("organization_type", n.OrganizationType).
		Set("location", n.Location).
		Set("contact_number", n.ContactNumber).
		Where(sq.Eq{"id": n.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	return execOne(ctx, tx, op, fmt.Sprintf("ngo with id %d", n.ID), query, args)
}

// execOne runs a statement expected to touch exactly one row.
func execOne(ctx context.Context, ext sqlx.ExecerContext, op, what, query string, args []interface{}) error {
	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		if pqCode(err) == codeCheckViolation {
			return fmt.Errorf("%s: %w: %s violates %s", op, apperrors.ErrInvalidRequest, what, pqConstraint(err))
		}

		return fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrNotFound, what)
	}

	return nil
}

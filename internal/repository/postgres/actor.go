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
	"github.com/jmoiron/sqlx"
)

type ActorRepository struct {
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewActorRepository(log *slog.Logger) *ActorRepository {
	return &ActorRepository{
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var actorColumns = []string{
	"a.id", "a.username", "a.email", "a.first_name", "a.last_name", "a.role", "a.phone_number", "a.created_at",
}

type actorRow struct {
	domain.Actor
	RefugeeID sql.NullInt64 `db:"refugee_id"`
	NGOID     sql.NullInt64 `db:"ngo_id"`
}

func (r actorRow) toDomain() *domain.Actor {
	a := r.Actor

	switch {
	case a.Role == domain.RoleRefugee && r.RefugeeID.Valid:
		a.Profile = domain.ProfileRef{Kind: domain.RefugeeProfile, ID: r.RefugeeID.Int64}
	case a.Role == domain.RoleNGO && r.NGOID.Valid:
		a.Profile = domain.ProfileRef{Kind: domain.NGOProfile, ID: r.NGOID.Int64}
	}

	return &a
}

func (ar *ActorRepository) CreateActor(ctx context.Context, ext sqlx.ExtContext, actor *domain.Actor) error {
	const op = "internal.repository.postgres.CreateActor"

	query, args, err := ar.sq.Insert("actors").
		Columns("id", "username", "email", "first_name", "last_name", "role", "phone_number", "created_at").
		Values(actor.ID, actor.Username, actor.Email, actor.FirstName, actor.LastName, actor.Role, actor.PhoneNumber, actor.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := ext.ExecContext(ctx, query, args...); err != nil {
		if pqCode(err) == codeUniqueViolation {
			return &apperrors.UsernameTakenError{Username: actor.Username}
		}

		return fmt.Errorf("%s: failed to insert actor: %w", op, err)
	}

	ar.log.Info("actor created", slog.String("op", op), slog.String("actor_id", actor.ID), slog.String("role", string(actor.Role)))

	return nil
}

func (ar *ActorRepository) GetActor(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.Actor, error) {
	const op = "internal.repository.postgres.GetActor"

	query, args, err := ar.sq.Select(actorColumns...).
		Columns("r.id AS refugee_id", "n.id AS ngo_id").
		From("actors a").
		LeftJoin("refugees r ON r.actor_id = a.id").
		LeftJoin("ngos n ON n.actor_id = a.id").
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var row actorRow
	if err := sqlx.GetContext(ctx, ext, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w: actor with id '%s'", op, apperrors.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%s: failed to get actor: %w", op, err)
	}

	return row.toDomain(), nil
}

func (ar *ActorRepository) DeleteActor(ctx context.Context, tx *sqlx.Tx, id string) error {
	const op = "internal.repository.postgres.DeleteActor"

	query, args, err := ar.sq.Delete("actors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to delete actor: %w", op, err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return fmt.Errorf("%s: %w: actor with id '%s'", op, apperrors.ErrNotFound, id)
	}

	return nil
}

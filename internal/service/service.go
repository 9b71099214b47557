package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/YusovID/refugee-case-service/pkg/logger/sl"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/YusovID/refugee-case-service/internal/service"

type Transactor interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// DB is what services need from the connection pool: transactions for
// writes and plain queries for reads.
type DB interface {
	Transactor
	sqlx.ExtContext
}

type BaseService struct {
	db     DB
	log    *slog.Logger
	actors repository.ActorRepository
	tracer trace.Tracer
}

func NewBaseService(db DB, log *slog.Logger, actors repository.ActorRepository) BaseService {
	return BaseService{
		db:     db,
		log:    log,
		actors: actors,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *BaseService) transaction(ctx context.Context, op string, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	ctx, span := s.tracer.Start(ctx, op)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.Error("failed to rollback transaction", slog.String("op", op), sl.Err(err))
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

// currentActor re-reads the acting account inside tx so that role and
// profile link are those at the time of the write.
func (s *BaseService) currentActor(ctx context.Context, tx *sqlx.Tx, actor domain.Actor) (domain.Actor, error) {
	current, err := s.actors.GetActor(ctx, tx, actor.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Actor{}, fmt.Errorf("%w: actor no longer exists", apperrors.ErrUnauthorized)
		}

		return domain.Actor{}, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("actor.id", current.ID),
		attribute.String("actor.role", string(current.Role)),
	)

	return *current, nil
}

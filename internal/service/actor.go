package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type RegisterInput struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Role        domain.Role
	PhoneNumber string
}

type ActorService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Actor, error)
	GetActor(ctx context.Context, id string) (*domain.Actor, error)
}

type ActorServiceImpl struct {
	BaseService
}

func NewActorService(db DB, log *slog.Logger, actors repository.ActorRepository) *ActorServiceImpl {
	return &ActorServiceImpl{BaseService: NewBaseService(db, log, actors)}
}

// Register creates an ngo or refugee account. Administrators are only
// created through BootstrapAdmin.
func (s *ActorServiceImpl) Register(ctx context.Context, in RegisterInput) (*domain.Actor, error) {
	const op = "internal.service.actor.Register"

	if in.Role != domain.RoleNGO && in.Role != domain.RoleRefugee {
		return nil, &apperrors.DeniedError{Operation: "register", Reason: fmt.Sprintf("role '%s' cannot self-register", in.Role)}
	}

	return s.create(ctx, op, in)
}

// BootstrapAdmin creates an administrator account. It is not reachable over
// HTTP and is meant for the migrator's -admin-username flag.
func (s *ActorServiceImpl) BootstrapAdmin(ctx context.Context, in RegisterInput) (*domain.Actor, error) {
	const op = "internal.service.actor.BootstrapAdmin"

	in.Role = domain.RoleAdmin

	return s.create(ctx, op, in)
}

func (s *ActorServiceImpl) create(ctx context.Context, op string, in RegisterInput) (*domain.Actor, error) {
	log := s.log.With(slog.String("op", op), slog.String("username", in.Username))

	actor := &domain.Actor{
		ID:          uuid.NewString(),
		Username:    in.Username,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Role:        in.Role,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.actors.CreateActor(ctx, tx, actor)
	})
	if err != nil {
		return nil, err
	}

	log.Info("actor registered", slog.String("actor_id", actor.ID), slog.String("role", string(actor.Role)))

	return actor, nil
}

func (s *ActorServiceImpl) GetActor(ctx context.Context, id string) (*domain.Actor, error) {
	const op = "internal.service.actor.GetActor"

	actor, err := s.actors.GetActor(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return actor, nil
}

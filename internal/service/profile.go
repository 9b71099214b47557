package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/authz"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/jmoiron/sqlx"
)

type RefugeeInput struct {
	DateOfBirth       time.Time
	Gender            domain.Gender
	FamilySize        int
	CountryOfOrigin   string
	NativeLanguage    string
	EducationLevel    string
	Skills            string
	MedicalConditions string
	EmergencyContact  string
	Documents         string
}

func (in RefugeeInput) apply(r *domain.Refugee) {
	r.DateOfBirth = in.DateOfBirth
	r.Gender = in.Gender
	r.FamilySize = in.FamilySize
	r.CountryOfOrigin = in.CountryOfOrigin
	r.NativeLanguage = in.NativeLanguage
	r.EducationLevel = in.EducationLevel
	r.Skills = in.Skills
	r.MedicalConditions = in.MedicalConditions
	r.EmergencyContact = in.EmergencyContact
	r.Documents = in.Documents
}

type NGOInput struct {
	OrganizationName string
	OrganizationType string
	Location         string
	ContactNumber    string
}

func (in NGOInput) apply(n *domain.NGO) {
	n.OrganizationName = in.OrganizationName
	n.OrganizationType = in.OrganizationType
	n.Location = in.Location
	n.ContactNumber = in.ContactNumber
}

type ProfileService interface {
	// CreateRefugeeProfile is idempotent: when the actor already owns a
	// profile it is returned with created set to false.
	CreateRefugeeProfile(ctx context.Context, actor domain.Actor, in RefugeeInput) (r *domain.Refugee, created bool, err error)
	ListRefugees(ctx context.Context, actor domain.Actor) ([]domain.Refugee, error)
	GetRefugee(ctx context.Context, actor domain.Actor, id int64) (*domain.Refugee, error)
	UpdateRefugee(ctx context.Context, actor domain.Actor, id int64, in RefugeeInput) (*domain.Refugee, error)
	ReviewRefugee(ctx context.Context, actor domain.Actor, id int64, status domain.RegistrationStatus) (*domain.Refugee, error)
	DeleteRefugee(ctx context.Context, actor domain.Actor, id int64) error

	CreateNGOProfile(ctx context.Context, actor domain.Actor, in NGOInput) (n *domain.NGO, created bool, err error)
	GetNGO(ctx context.Context, id int64) (*domain.NGO, error)
	UpdateNGO(ctx context.Context, actor domain.Actor, id int64, in NGOInput) (*domain.NGO, error)
}

type ProfileServiceImpl struct {
	BaseService
	profiles repository.ProfileRepository
}

func NewProfileService(
	db DB,
	log *slog.Logger,
	actors repository.ActorRepository,
	profiles repository.ProfileRepository,
) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		BaseService: NewBaseService(db, log, actors),
		profiles:    profiles,
	}
}

func (s *ProfileServiceImpl) CreateRefugeeProfile(ctx context.Context, actor domain.Actor, in RefugeeInput) (*domain.Refugee, bool, error) {
	const op = "internal.service.profile.CreateRefugeeProfile"
	log := s.log.With(slog.String("op", op), slog.String("actor_id", actor.ID))

	var (
		refugee *domain.Refugee
		created bool
	)

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		d := authz.Check(current, authz.OpCreateRefugeeProfile, authz.Target{})
		if !d.Allowed {
			if d.Reason == authz.ReasonProfileExists {
				refugee, err = s.profiles.GetRefugee(ctx, tx, current.Profile.ID)
				return err
			}

			return d.Err()
		}

		now := time.Now().UTC()
		refugee = &domain.Refugee{
			ActorID:      current.ID,
			Status:       domain.RegistrationPending,
			RegisteredAt: now,
			LastUpdated:  now,
		}
		in.apply(refugee)

		if err := s.profiles.CreateRefugee(ctx, tx, refugee); err != nil {
			return err
		}

		created = true

		return nil
	})

	if errors.Is(err, apperrors.ErrProfileExists) {
		// Lost a race with a concurrent creation; the other one won.
		refugee, err = s.profiles.GetRefugeeByActor(ctx, s.db, actor.ID)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}

		return refugee, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	if created {
		log.Info("refugee profile created", slog.Int64("refugee_id", refugee.ID))
	} else {
		log.Info("refugee profile already exists", slog.Int64("refugee_id", refugee.ID))
	}

	return refugee, created, nil
}

func (s *ProfileServiceImpl) ListRefugees(ctx context.Context, actor domain.Actor) ([]domain.Refugee, error) {
	const op = "internal.service.profile.ListRefugees"

	if err := authz.Authorize(actor, authz.OpListRefugees, authz.Target{}); err != nil {
		return nil, err
	}

	scope, ok := authz.ScopeFor(actor)
	if !ok {
		return []domain.Refugee{}, nil
	}

	refugees, err := s.profiles.ListRefugees(ctx, s.db, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return refugees, nil
}

func (s *ProfileServiceImpl) GetRefugee(ctx context.Context, actor domain.Actor, id int64) (*domain.Refugee, error) {
	const op = "internal.service.profile.GetRefugee"

	refugee, err := s.profiles.GetRefugee(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	target := authz.Target{RefugeeID: refugee.ID}

	if actor.Role == domain.RoleNGO {
		target.LinkedNGOIDs, err = s.profiles.LinkedNGOIDs(ctx, s.db, refugee.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := authz.Authorize(actor, authz.OpViewRefugee, target); err != nil {
		return nil, err
	}

	return refugee, nil
}

func (s *ProfileServiceImpl) UpdateRefugee(ctx context.Context, actor domain.Actor, id int64, in RefugeeInput) (*domain.Refugee, error) {
	const op = "internal.service.profile.UpdateRefugee"
	log := s.log.With(slog.String("op", op), slog.Int64("refugee_id", id))

	var refugee *domain.Refugee

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		refugee, err = s.profiles.GetRefugee(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpUpdateRefugee, authz.Target{RefugeeID: refugee.ID}); err != nil {
			return err
		}

		in.apply(refugee)
		refugee.LastUpdated = time.Now().UTC()

		return s.profiles.UpdateRefugee(ctx, tx, refugee)
	})
	if err != nil {
		return nil, err
	}

	log.Info("refugee profile updated")

	return refugee, nil
}

func (s *ProfileServiceImpl) ReviewRefugee(ctx context.Context, actor domain.Actor, id int64, status domain.RegistrationStatus) (*domain.Refugee, error) {
	const op = "internal.service.profile.ReviewRefugee"
	log := s.log.With(slog.String("op", op), slog.Int64("refugee_id", id), slog.String("status", string(status)))

	var refugee *domain.Refugee

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpReviewRefugee, authz.Target{RefugeeID: id}); err != nil {
			return err
		}

		if err := s.profiles.SetRefugeeStatus(ctx, tx, id, status, time.Now().UTC()); err != nil {
			return err
		}

		refugee, err = s.profiles.GetRefugee(ctx, tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("refugee registration reviewed")

	return refugee, nil
}

// DeleteRefugee removes the refugee's account. The profile and every
// application of the refugee go with it.
func (s *ProfileServiceImpl) DeleteRefugee(ctx context.Context, actor domain.Actor, id int64) error {
	const op = "internal.service.profile.DeleteRefugee"
	log := s.log.With(slog.String("op", op), slog.Int64("refugee_id", id))

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpDeleteRefugee, authz.Target{RefugeeID: id}); err != nil {
			return err
		}

		refugee, err := s.profiles.GetRefugee(ctx, tx, id)
		if err != nil {
			return err
		}

		return s.actors.DeleteActor(ctx, tx, refugee.ActorID)
	})
	if err != nil {
		return err
	}

	log.Info("refugee account deleted")

	return nil
}

func (s *ProfileServiceImpl) CreateNGOProfile(ctx context.Context, actor domain.Actor, in NGOInput) (*domain.NGO, bool, error) {
	const op = "internal.service.profile.CreateNGOProfile"
	log := s.log.With(slog.String("op", op), slog.String("actor_id", actor.ID))

	var (
		ngo     *domain.NGO
		created bool
	)

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		d := authz.Check(current, authz.OpCreateNGOProfile, authz.Target{})
		if !d.Allowed {
			if d.Reason == authz.ReasonProfileExists {
				ngo, err = s.profiles.GetNGO(ctx, tx, current.Profile.ID)
				return err
			}

			return d.Err()
		}

		ngo = &domain.NGO{ActorID: current.ID, CreatedAt: time.Now().UTC()}
		in.apply(ngo)

		if err := s.profiles.CreateNGO(ctx, tx, ngo); err != nil {
			return err
		}

		created = true

		return nil
	})

	if errors.Is(err, apperrors.ErrProfileExists) {
		ngo, err = s.profiles.GetNGOByActor(ctx, s.db, actor.ID)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}

		return ngo, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	log.Info("ngo profile resolved", slog.Int64("ngo_id", ngo.ID), slog.Bool("created", created))

	return ngo, created, nil
}

func (s *ProfileServiceImpl) GetNGO(ctx context.Context, id int64) (*domain.NGO, error) {
	const op = "internal.service.profile.GetNGO"

	ngo, err := s.profiles.GetNGO(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ngo, nil
}

func (s *ProfileServiceImpl) UpdateNGO(ctx context.Context, actor domain.Actor, id int64, in NGOInput) (*domain.NGO, error) {
	const op = "internal.service.profile.UpdateNGO"

	var ngo *domain.NGO

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		ngo, err = s.profiles.GetNGO(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpUpdateNGO, authz.Target{NGOID: ngo.ID}); err != nil {
			return err
		}

		in.apply(ngo)

		return s.profiles.UpdateNGO(ctx, tx, ngo)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("ngo profile updated", slog.String("op", op), slog.Int64("ngo_id", id))

	return ngo, nil
}

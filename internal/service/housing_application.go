package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/authz"
	"github.com/YusovID/refugee-case-service/internal/capacity"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/jmoiron/sqlx"
)

type HousingApplicationService interface {
	Submit(ctx context.Context, actor domain.Actor, housingID int64, notes string) (*domain.HousingApplication, error)
	Decide(ctx context.Context, actor domain.Actor, applicationID int64, decision domain.Decision) (*domain.HousingApplication, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.HousingApplication, error)
	History(ctx context.Context, actor domain.Actor, applicationID int64) ([]domain.ApplicationEvent, error)
}

// CapacityReserver takes one place in a locked housing unit.
type CapacityReserver interface {
	Reserve(ctx context.Context, tx *sqlx.Tx, h domain.Housing) (domain.Housing, error)
}

var _ CapacityReserver = (*capacity.Tracker)(nil)

type HousingApplicationServiceImpl struct {
	BaseService
	listings repository.ListingRepository
	apps     repository.ApplicationRepository
	capacity CapacityReserver
}

func NewHousingApplicationService(
	db DB,
	log *slog.Logger,
	actors repository.ActorRepository,
	listings repository.ListingRepository,
	apps repository.ApplicationRepository,
	tracker CapacityReserver,
) *HousingApplicationServiceImpl {
	return &HousingApplicationServiceImpl{
		BaseService: NewBaseService(db, log, actors),
		listings:    listings,
		apps:        apps,
		capacity:    tracker,
	}
}

func (s *HousingApplicationServiceImpl) Submit(ctx context.Context, actor domain.Actor, housingID int64, notes string) (*domain.HousingApplication, error) {
	const op = "internal.service.housingapplication.Submit"
	log := s.log.With(slog.String("op", op), slog.String("actor_id", actor.ID), slog.Int64("housing_id", housingID))

	var app *domain.HousingApplication

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpApply, authz.Target{}); err != nil {
			return err
		}

		housing, err := s.listings.GetHousing(ctx, tx, housingID)
		if err != nil {
			return err
		}

		if !housing.IsAvailable() {
			return fmt.Errorf("%w: housing %d is %s with %d/%d occupants",
				apperrors.ErrUnavailable, housing.ID, housing.Status, housing.CurrentOccupancy, housing.Capacity)
		}

		refugeeID, _ := current.Profile.RefugeeID()
		app = &domain.HousingApplication{
			RefugeeID:       refugeeID,
			HousingID:       housing.ID,
			Status:          domain.StatusPending,
			Notes:           notes,
			ApplicationDate: time.Now().UTC(),
		}

		return s.apps.CreateHousingApplication(ctx, tx, app)
	})
	if err != nil {
		log.Warn("housing application rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	log.Info("housing application submitted", slog.Int64("application_id", app.ID))

	return app, nil
}

// Decide approves or rejects a pending application. Approval takes a place
// in the housing unit in the same transaction; if no place is left nothing
// is written.
func (s *HousingApplicationServiceImpl) Decide(ctx context.Context, actor domain.Actor, applicationID int64, decision domain.Decision) (*domain.HousingApplication, error) {
	const op = "internal.service.housingapplication.Decide"
	log := s.log.With(slog.String("op", op), slog.Int64("application_id", applicationID), slog.String("decision", string(decision)))

	if !decision.Valid() {
		return nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrInvalidRequest, decision)
	}

	var app *domain.HousingApplication

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		app, err = s.apps.GetHousingApplicationForUpdate(ctx, tx, applicationID)
		if err != nil {
			return err
		}

		housing, err := s.listings.GetHousingForUpdate(ctx, tx, app.HousingID)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpDecide, authz.Target{OwnerNGOID: housing.NGOID}); err != nil {
			return err
		}

		next := decision.Status()
		if app.Status != domain.StatusPending {
			return &apperrors.InvalidTransitionError{Kind: string(domain.KindHousing), From: string(app.Status), To: string(next)}
		}

		if decision == domain.DecisionApproved {
			if _, err := s.capacity.Reserve(ctx, tx, *housing); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		if err := s.apps.UpdateHousingApplicationStatus(ctx, tx, app.ID, next, now); err != nil {
			return err
		}

		if err := s.apps.AppendEvent(ctx, tx, &domain.ApplicationEvent{
			Kind:          domain.KindHousing,
			ApplicationID: app.ID,
			ActorID:       current.ID,
			FromStatus:    app.Status,
			ToStatus:      next,
			CreatedAt:     now,
		}); err != nil {
			return err
		}

		app.Status = next
		app.DecisionDate = &now

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("housing application decided")

	return app, nil
}

func (s *HousingApplicationServiceImpl) List(ctx context.Context, actor domain.Actor) ([]domain.HousingApplication, error) {
	const op = "internal.service.housingapplication.List"

	if err := authz.Authorize(actor, authz.OpListApplications, authz.Target{}); err != nil {
		return nil, err
	}

	scope, ok := authz.ScopeFor(actor)
	if !ok {
		return []domain.HousingApplication{}, nil
	}

	apps, err := s.apps.ListHousingApplications(ctx, s.db, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return apps, nil
}

func (s *HousingApplicationServiceImpl) History(ctx context.Context, actor domain.Actor, applicationID int64) ([]domain.ApplicationEvent, error) {
	const op = "internal.service.housingapplication.History"

	app, err := s.apps.GetHousingApplication(ctx, s.db, applicationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	housing, err := s.listings.GetHousing(ctx, s.db, app.HousingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	target := authz.Target{OwnerNGOID: housing.NGOID, RefugeeID: app.RefugeeID}
	if err := authz.Authorize(actor, authz.OpViewApplicationHistory, target); err != nil {
		return nil, err
	}

	events, err := s.apps.ListEvents(ctx, s.db, domain.KindHousing, app.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/authz"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/jmoiron/sqlx"
)

// HousingInput carries the writable housing fields. Occupancy changes only
// through approvals.
type HousingInput struct {
	NGOID        *int64
	Name         string
	Description  string
	Location     string
	Address      string
	Capacity     int
	HousingType  domain.HousingType
	Amenities    string
	Status       domain.HousingStatus
	CostPerMonth *float64
}

func (in HousingInput) apply(h *domain.Housing) {
	h.Name = in.Name
	h.Description = in.Description
	h.Location = in.Location
	h.Address = in.Address
	h.Capacity = in.Capacity
	h.HousingType = in.HousingType
	h.Amenities = in.Amenities
	h.CostPerMonth = in.CostPerMonth

	if in.Status != "" {
		h.Status = in.Status
	}
}

type JobInput struct {
	NGOID        *int64
	Title        string
	Description  string
	Location     string
	Employer     string
	JobType      domain.JobType
	SalaryRange  string
	Requirements string
	Benefits     string
	Deadline     time.Time
	IsActive     bool
}

func (in JobInput) apply(j *domain.Job) {
	j.Title = in.Title
	j.Description = in.Description
	j.Location = in.Location
	j.Employer = in.Employer
	j.JobType = in.JobType
	j.SalaryRange = in.SalaryRange
	j.Requirements = in.Requirements
	j.Benefits = in.Benefits
	j.Deadline = in.Deadline
	j.IsActive = in.IsActive
}

type ListingService interface {
	CreateHousing(ctx context.Context, actor domain.Actor, in HousingInput) (*domain.Housing, error)
	UpdateHousing(ctx context.Context, actor domain.Actor, id int64, in HousingInput) (*domain.Housing, error)
	DeleteHousing(ctx context.Context, actor domain.Actor, id int64) error
	GetHousing(ctx context.Context, id int64) (*domain.Housing, error)
	ListHousing(ctx context.Context, availableOnly bool) ([]domain.Housing, error)

	CreateJob(ctx context.Context, actor domain.Actor, in JobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, actor domain.Actor, id int64, in JobInput) (*domain.Job, error)
	DeleteJob(ctx context.Context, actor domain.Actor, id int64) error
	GetJob(ctx context.Context, id int64) (*domain.Job, error)
	ListJobs(ctx context.Context, openOnly bool) ([]domain.Job, error)
}

type ListingServiceImpl struct {
	BaseService
	listings repository.ListingRepository
}

func NewListingService(
	db DB,
	log *slog.Logger,
	actors repository.ActorRepository,
	listings repository.ListingRepository,
) *ListingServiceImpl {
	return &ListingServiceImpl{
		BaseService: NewBaseService(db, log, actors),
		listings:    listings,
	}
}

// ownerNGO resolves which NGO a new listing belongs to. An ngo actor always
// lists under its own profile; an admin must name the NGO.
func ownerNGO(actor domain.Actor, requested *int64) (int64, error) {
	if id, ok := actor.Profile.NGOID(); ok && actor.Role == domain.RoleNGO {
		return id, nil
	}

	if requested == nil {
		return 0, fmt.Errorf("%w: ngo_id is required", apperrors.ErrInvalidRequest)
	}

	return *requested, nil
}

func (s *ListingServiceImpl) CreateHousing(ctx context.Context, actor domain.Actor, in HousingInput) (*domain.Housing, error) {
	const op = "internal.service.listing.CreateHousing"

	var housing *domain.Housing

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpCreateListing, authz.Target{}); err != nil {
			return err
		}

		ngoID, err := ownerNGO(current, in.NGOID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		housing = &domain.Housing{
			NGOID:       ngoID,
			Status:      domain.HousingAvailable,
			CreatedAt:   now,
			LastUpdated: now,
		}
		in.apply(housing)

		return s.listings.CreateHousing(ctx, tx, housing)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("housing created", slog.String("op", op), slog.Int64("housing_id", housing.ID), slog.Int64("ngo_id", housing.NGOID))

	return housing, nil
}

func (s *ListingServiceImpl) UpdateHousing(ctx context.Context, actor domain.Actor, id int64, in HousingInput) (*domain.Housing, error) {
	const op = "internal.service.listing.UpdateHousing"

	var housing *domain.Housing

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		housing, err = s.listings.GetHousingForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpUpdateListing, authz.Target{OwnerNGOID: housing.NGOID}); err != nil {
			return err
		}

		if in.Capacity < housing.CurrentOccupancy {
			return fmt.Errorf("%w: capacity %d is below current occupancy %d",
				apperrors.ErrInvalidRequest, in.Capacity, housing.CurrentOccupancy)
		}

		in.apply(housing)
		housing.LastUpdated = time.Now().UTC()

		return s.listings.UpdateHousing(ctx, tx, housing)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("housing updated", slog.String("op", op), slog.Int64("housing_id", id))

	return housing, nil
}

func (s *ListingServiceImpl) DeleteHousing(ctx context.Context, actor domain.Actor, id int64) error {
	const op = "internal.service.listing.DeleteHousing"

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		housing, err := s.listings.GetHousingForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpDeleteListing, authz.Target{OwnerNGOID: housing.NGOID}); err != nil {
			return err
		}

		return s.listings.DeleteHousing(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("housing deleted", slog.String("op", op), slog.Int64("housing_id", id))

	return nil
}

func (s *ListingServiceImpl) GetHousing(ctx context.Context, id int64) (*domain.Housing, error) {
	const op = "internal.service.listing.GetHousing"

	housing, err := s.listings.GetHousing(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return housing, nil
}

func (s *ListingServiceImpl) ListHousing(ctx context.Context, availableOnly bool) ([]domain.Housing, error) {
	const op = "internal.service.listing.ListHousing"

	units, err := s.listings.ListHousing(ctx, s.db, repository.HousingFilter{AvailableOnly: availableOnly})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return units, nil
}

func (s *ListingServiceImpl) CreateJob(ctx context.Context, actor domain.Actor, in JobInput) (*domain.Job, error) {
	const op = "internal.service.listing.CreateJob"

	var job *domain.Job

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpCreateListing, authz.Target{}); err != nil {
			return err
		}

		ngoID, err := ownerNGO(current, in.NGOID)
		if err != nil {
			return err
		}

		job = &domain.Job{NGOID: ngoID, PostedAt: time.Now().UTC()}
		in.apply(job)

		return s.listings.CreateJob(ctx, tx, job)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("job created", slog.String("op", op), slog.Int64("job_id", job.ID), slog.Int64("ngo_id", job.NGOID))

	return job, nil
}

func (s *ListingServiceImpl) UpdateJob(ctx context.Context, actor domain.Actor, id int64, in JobInput) (*domain.Job, error) {
	const op = "internal.service.listing.UpdateJob"

	var job *domain.Job

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		job, err = s.listings.GetJobForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpUpdateListing, authz.Target{OwnerNGOID: job.NGOID}); err != nil {
			return err
		}

		in.apply(job)

		return s.listings.UpdateJob(ctx, tx, job)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("job updated", slog.String("op", op), slog.Int64("job_id", id))

	return job, nil
}

func (s *ListingServiceImpl) DeleteJob(ctx context.Context, actor domain.Actor, id int64) error {
	const op = "internal.service.listing.DeleteJob"

	err := s.transaction(ctx, op, func(ctx context.Context, tx *sqlx.Tx) error {
		current, err := s.currentActor(ctx, tx, actor)
		if err != nil {
			return err
		}

		job, err := s.listings.GetJobForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := authz.Authorize(current, authz.OpDeleteListing, authz.Target{OwnerNGOID: job.NGOID}); err != nil {
			return err
		}

		return s.listings.DeleteJob(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("job deleted", slog.String("op", op), slog.Int64("job_id", id))

	return nil
}

func (s *ListingServiceImpl) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	const op = "internal.service.listing.GetJob"

	job, err := s.listings.GetJob(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return job, nil
}

func (s *ListingServiceImpl) ListJobs(ctx context.Context, openOnly bool) ([]domain.Job, error) {
	const op = "internal.service.listing.ListJobs"

	var filter repository.JobFilter
	if openOnly {
		now := time.Now().UTC()
		filter.OpenAt = &now
	}

	jobs, err := s.listings.ListJobs(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return jobs, nil
}

// package repository defines the interfaces for the data persistence layer.
// These interfaces abstract the underlying database implementation from the service layer.
package repository

import (
	"context"
	"time"

	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ActorRepository defines the contract for account records.
type ActorRepository interface {
	// CreateActor inserts a new actor. It returns apperrors.ErrAlreadyExists if the username is taken.
	CreateActor(ctx context.Context, ext sqlx.ExtContext, actor *domain.Actor) error

	// GetActor loads an actor together with its profile link.
	// Services call it inside their transaction so that the gate sees the current role and profile.
	// It returns apperrors.ErrNotFound if the actor does not exist.
	GetActor(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.Actor, error)

	// DeleteActor removes the account; profiles and applications cascade.
	DeleteActor(ctx context.Context, tx *sqlx.Tx, id string) error
}

// ProfileRepository defines the contract for refugee and NGO profiles.
type ProfileRepository interface {
	// CreateRefugee inserts a refugee profile.
	// It returns apperrors.ErrProfileExists if the actor already owns one.
	CreateRefugee(ctx context.Context, tx *sqlx.Tx, r *domain.Refugee) error
	GetRefugee(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Refugee, error)
	GetRefugeeByActor(ctx context.Context, ext sqlx.ExtContext, actorID string) (*domain.Refugee, error)
	UpdateRefugee(ctx context.Context, tx *sqlx.Tx, r *domain.Refugee) error
	SetRefugeeStatus(ctx context.Context, tx *sqlx.Tx, id int64, status domain.RegistrationStatus, at time.Time) error

	// ListRefugees returns refugees visible within scope. An NGO scope yields the refugees
	// that applied to any of the NGO's listings.
	ListRefugees(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.Refugee, error)

	// LinkedNGOIDs returns the NGOs owning a listing the refugee applied to.
	LinkedNGOIDs(ctx context.Context, ext sqlx.ExtContext, refugeeID int64) ([]int64, error)

	// CreateNGO inserts an NGO profile.
	// It returns apperrors.ErrProfileExists if the actor already owns one.
	CreateNGO(ctx context.Context, tx *sqlx.Tx, n *domain.NGO) error
	GetNGO(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.NGO, error)
	GetNGOByActor(ctx context.Context, ext sqlx.ExtContext, actorID string) (*domain.NGO, error)
	UpdateNGO(ctx context.Context, tx *sqlx.Tx, n *domain.NGO) error
}

type HousingFilter struct {
	NGOID         *int64
	AvailableOnly bool
}

type JobFilter struct {
	NGOID  *int64
	OpenAt *time.Time
}

// ListingRepository defines the contract for housing units and job postings.
type ListingRepository interface {
	CreateHousing(ctx context.Context, ext sqlx.ExtContext, h *domain.Housing) error
	GetHousing(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Housing, error)

	// GetHousingForUpdate retrieves a housing unit and acquires a row-level lock ("FOR UPDATE").
	// It returns apperrors.ErrNotFound if the unit is not found.
	GetHousingForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.Housing, error)

	// UpdateHousing writes the editable fields. Occupancy is never written here.
	UpdateHousing(ctx context.Context, tx *sqlx.Tx, h *domain.Housing) error
	DeleteHousing(ctx context.Context, tx *sqlx.Tx, id int64) error
	ListHousing(ctx context.Context, ext sqlx.ExtContext, filter HousingFilter) ([]domain.Housing, error)

	// SetOccupancy is a compare-and-swap on current_occupancy guarded by capacity.
	SetOccupancy(ctx context.Context, tx *sqlx.Tx, housingID int64, expected, occupancy int, status domain.HousingStatus) (bool, error)

	CreateJob(ctx context.Context, ext sqlx.ExtContext, j *domain.Job) error
	GetJob(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Job, error)
	// GetJobForUpdate reads a job and locks its row until tx ends.
	GetJobForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.Job, error)
	UpdateJob(ctx context.Context, tx *sqlx.Tx, j *domain.Job) error
	DeleteJob(ctx context.Context, tx *sqlx.Tx, id int64) error
	ListJobs(ctx context.Context, ext sqlx.ExtContext, filter JobFilter) ([]domain.Job, error)
}

// ApplicationRepository defines the contract for housing and job applications and their audit trail.
// Write methods are expected to be executed within a transaction.
type ApplicationRepository interface {
	// CreateHousingApplication inserts a pending application.
	// It returns apperrors.ErrDuplicateApplication if the refugee already applied to the unit.
	CreateHousingApplication(ctx context.Context, tx *sqlx.Tx, a *domain.HousingApplication) error
	GetHousingApplication(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.HousingApplication, error)

	// GetHousingApplicationForUpdate retrieves an application and locks its row.
	GetHousingApplicationForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.HousingApplication, error)
	UpdateHousingApplicationStatus(ctx context.Context, tx *sqlx.Tx, id int64, status domain.ApplicationStatus, decidedAt time.Time) error
	ListHousingApplications(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.HousingApplication, error)

	// CreateJobApplication inserts a pending application.
	// It returns apperrors.ErrDuplicateApplication if the refugee already applied to the job.
	CreateJobApplication(ctx context.Context, tx *sqlx.Tx, a *domain.JobApplication) error
	GetJobApplication(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.JobApplication, error)
	GetJobApplicationForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.JobApplication, error)

	// UpdateJobApplication writes status, last_updated, interview_date and notes.
	UpdateJobApplication(ctx context.Context, tx *sqlx.Tx, a *domain.JobApplication) error
	ListJobApplications(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.JobApplication, error)

	AppendEvent(ctx context.Context, tx *sqlx.Tx, e *domain.ApplicationEvent) error
	ListEvents(ctx context.Context, ext sqlx.ExtContext, kind domain.ApplicationKind, applicationID int64) ([]domain.ApplicationEvent, error)
}

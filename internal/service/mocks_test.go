package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// TransactorMock satisfies DB. Reads go to the repository mocks, so the
// embedded ExtContext is never called.
type TransactorMock struct {
	mock.Mock
	sqlx.ExtContext
}

var _ DB = (*TransactorMock)(nil)

func (m *TransactorMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*sqlx.Tx), args.Error(1)
}

type ActorRepositoryMock struct {
	mock.Mock
}

var _ repository.ActorRepository = (*ActorRepositoryMock)(nil)

func (m *ActorRepositoryMock) CreateActor(ctx context.Context, ext sqlx.ExtContext, actor *domain.Actor) error {
	args := m.Called(ctx, ext, actor)
	return args.Error(0)
}

func (m *ActorRepositoryMock) GetActor(ctx context.Context, ext sqlx.ExtContext, id string) (*domain.Actor, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *ActorRepositoryMock) DeleteActor(ctx context.Context, tx *sqlx.Tx, id string) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type ProfileRepositoryMock struct {
	mock.Mock
}

var _ repository.ProfileRepository = (*ProfileRepositoryMock)(nil)

func (m *ProfileRepositoryMock) CreateRefugee(ctx context.Context, tx *sqlx.Tx, r *domain.Refugee) error {
	args := m.Called(ctx, tx, r)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) GetRefugee(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Refugee, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Refugee), args.Error(1)
}

func (m *ProfileRepositoryMock) GetRefugeeByActor(ctx context.Context, ext sqlx.ExtContext, actorID string) (*domain.Refugee, error) {
	args := m.Called(ctx, ext, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Refugee), args.Error(1)
}

func (m *ProfileRepositoryMock) UpdateRefugee(ctx context.Context, tx *sqlx.Tx, r *domain.Refugee) error {
	args := m.Called(ctx, tx, r)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) SetRefugeeStatus(ctx context.Context, tx *sqlx.Tx, id int64, status domain.RegistrationStatus, at time.Time) error {
	args := m.Called(ctx, tx, id, status, at)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) ListRefugees(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.Refugee, error) {
	args := m.Called(ctx, ext, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Refugee), args.Error(1)
}

func (m *ProfileRepositoryMock) LinkedNGOIDs(ctx context.Context, ext sqlx.ExtContext, refugeeID int64) ([]int64, error) {
	args := m.Called(ctx, ext, refugeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int64), args.Error(1)
}

func (m *ProfileRepositoryMock) CreateNGO(ctx context.Context, tx *sqlx.Tx, n *domain.NGO) error {
	args := m.Called(ctx, tx, n)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) GetNGO(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.NGO, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NGO), args.Error(1)
}

func (m *ProfileRepositoryMock) GetNGOByActor(ctx context.Context, ext sqlx.ExtContext, actorID string) (*domain.NGO, error) {
	args := m.Called(ctx, ext, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NGO), args.Error(1)
}

func (m *ProfileRepositoryMock) UpdateNGO(ctx context.Context, tx *sqlx.Tx, n *domain.NGO) error {
	args := m.Called(ctx, tx, n)
	return args.Error(0)
}

type ListingRepositoryMock struct {
	mock.Mock
}

var _ repository.ListingRepository = (*ListingRepositoryMock)(nil)

func (m *ListingRepositoryMock) CreateHousing(ctx context.Context, ext sqlx.ExtContext, h *domain.Housing) error {
	args := m.Called(ctx, ext, h)
	return args.Error(0)
}

func (m *ListingRepositoryMock) GetHousing(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Housing, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Housing), args.Error(1)
}

func (m *ListingRepositoryMock) GetHousingForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.Housing, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Housing), args.Error(1)
}

func (m *ListingRepositoryMock) UpdateHousing(ctx context.Context, tx *sqlx.Tx, h *domain.Housing) error {
	args := m.Called(ctx, tx, h)
	return args.Error(0)
}

func (m *ListingRepositoryMock) DeleteHousing(ctx context.Context, tx *sqlx.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *ListingRepositoryMock) ListHousing(ctx context.Context, ext sqlx.ExtContext, filter repository.HousingFilter) ([]domain.Housing, error) {
	args := m.Called(ctx, ext, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Housing), args.Error(1)
}

func (m *ListingRepositoryMock) SetOccupancy(ctx context.Context, tx *sqlx.Tx, housingID int64, expected, occupancy int, status domain.HousingStatus) (bool, error) {
	args := m.Called(ctx, tx, housingID, expected, occupancy, status)
	return args.Bool(0), args.Error(1)
}

func (m *ListingRepositoryMock) CreateJob(ctx context.Context, ext sqlx.ExtContext, j *domain.Job) error {
	args := m.Called(ctx, ext, j)
	return args.Error(0)
}

func (m *ListingRepositoryMock) GetJob(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.Job, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *ListingRepositoryMock) GetJobForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.Job, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *ListingRepositoryMock) UpdateJob(ctx context.Context, tx *sqlx.Tx, j *domain.Job) error {
	args := m.Called(ctx, tx, j)
	return args.Error(0)
}

func (m *ListingRepositoryMock) DeleteJob(ctx context.Context, tx *sqlx.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *ListingRepositoryMock) ListJobs(ctx context.Context, ext sqlx.ExtContext, filter repository.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, ext, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Job), args.Error(1)
}

type ApplicationRepositoryMock struct {
	mock.Mock
}

var _ repository.ApplicationRepository = (*ApplicationRepositoryMock)(nil)

func (m *ApplicationRepositoryMock) CreateHousingApplication(ctx context.Context, tx *sqlx.Tx, a *domain.HousingApplication) error {
	args := m.Called(ctx, tx, a)
	return args.Error(0)
}

func (m *ApplicationRepositoryMock) GetHousingApplication(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.HousingApplication, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.HousingApplication), args.Error(1)
}

func (m *ApplicationRepositoryMock) GetHousingApplicationForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.HousingApplication, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.HousingApplication), args.Error(1)
}

func (m *ApplicationRepositoryMock) UpdateHousingApplicationStatus(ctx context.Context, tx *sqlx.Tx, id int64, status domain.ApplicationStatus, decidedAt time.Time) error {
	args := m.Called(ctx, tx, id, status, decidedAt)
	return args.Error(0)
}

func (m *ApplicationRepositoryMock) ListHousingApplications(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.HousingApplication, error) {
	args := m.Called(ctx, ext, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.HousingApplication), args.Error(1)
}

func (m *ApplicationRepositoryMock) CreateJobApplication(ctx context.Context, tx *sqlx.Tx, a *domain.JobApplication) error {
	args := m.Called(ctx, tx, a)
	return args.Error(0)
}

func (m *ApplicationRepositoryMock) GetJobApplication(ctx context.Context, ext sqlx.ExtContext, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, ext, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *ApplicationRepositoryMock) GetJobApplicationForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *ApplicationRepositoryMock) UpdateJobApplication(ctx context.Context, tx *sqlx.Tx, a *domain.JobApplication) error {
	args := m.Called(ctx, tx, a)
	return args.Error(0)
}

func (m *ApplicationRepositoryMock) ListJobApplications(ctx context.Context, ext sqlx.ExtContext, scope domain.Scope) ([]domain.JobApplication, error) {
	args := m.Called(ctx, ext, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *ApplicationRepositoryMock) AppendEvent(ctx context.Context, tx *sqlx.Tx, e *domain.ApplicationEvent) error {
	args := m.Called(ctx, tx, e)
	return args.Error(0)
}

func (m *ApplicationRepositoryMock) ListEvents(ctx context.Context, ext sqlx.ExtContext, kind domain.ApplicationKind, applicationID int64) ([]domain.ApplicationEvent, error) {
	args := m.Called(ctx, ext, kind, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ApplicationEvent), args.Error(1)
}

package http

import (
	"context"
	"time"

	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/ratelimit"
	"github.com/YusovID/refugee-case-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type TokensMock struct {
	mock.Mock
}

var _ TokenIssuer = (*TokensMock)(nil)

func (m *TokensMock) Issue(actorID string) (string, time.Time, error) {
	args := m.Called(actorID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *TokensMock) Parse(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

type LimiterMock struct {
	mock.Mock
}

var _ ratelimit.Limiter = (*LimiterMock)(nil)

func (m *LimiterMock) Allow(ctx context.Context, key string) bool {
	return m.Called(ctx, key).Bool(0)
}

func (m *LimiterMock) Window() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

type ActorServiceMock struct {
	mock.Mock
}

var _ service.ActorService = (*ActorServiceMock)(nil)

func (m *ActorServiceMock) Register(ctx context.Context, in service.RegisterInput) (*domain.Actor, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *ActorServiceMock) GetActor(ctx context.Context, id string) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Actor), args.Error(1)
}

type ProfileServiceMock struct {
	mock.Mock
}

var _ service.ProfileService = (*ProfileServiceMock)(nil)

func (m *ProfileServiceMock) CreateRefugeeProfile(ctx context.Context, actor domain.Actor, in service.RefugeeInput) (*domain.Refugee, bool, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}

	return args.Get(0).(*domain.Refugee), args.Bool(1), args.Error(2)
}

func (m *ProfileServiceMock) ListRefugees(ctx context.Context, actor domain.Actor) ([]domain.Refugee, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Refugee), args.Error(1)
}

func (m *ProfileServiceMock) GetRefugee(ctx context.Context, actor domain.Actor, id int64) (*domain.Refugee, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Refugee), args.Error(1)
}

func (m *ProfileServiceMock) UpdateRefugee(ctx context.Context, actor domain.Actor, id int64, in service.RefugeeInput) (*domain.Refugee, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Refugee), args.Error(1)
}

func (m *ProfileServiceMock) ReviewRefugee(ctx context.Context, actor domain.Actor, id int64, status domain.RegistrationStatus) (*domain.Refugee, error) {
	args := m.Called(ctx, actor, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Refugee), args.Error(1)
}

func (m *ProfileServiceMock) DeleteRefugee(ctx context.Context, actor domain.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *ProfileServiceMock) CreateNGOProfile(ctx context.Context, actor domain.Actor, in service.NGOInput) (*domain.NGO, bool, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}

	return args.Get(0).(*domain.NGO), args.Bool(1), args.Error(2)
}

func (m *ProfileServiceMock) GetNGO(ctx context.Context, id int64) (*domain.NGO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NGO), args.Error(1)
}

func (m *ProfileServiceMock) UpdateNGO(ctx context.Context, actor domain.Actor, id int64, in service.NGOInput) (*domain.NGO, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NGO), args.Error(1)
}

type ListingServiceMock struct {
	mock.Mock
}

var _ service.ListingService = (*ListingServiceMock)(nil)

func (m *ListingServiceMock) CreateHousing(ctx context.Context, actor domain.Actor, in service.HousingInput) (*domain.Housing, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Housing), args.Error(1)
}

func (m *ListingServiceMock) UpdateHousing(ctx context.Context, actor domain.Actor, id int64, in service.HousingInput) (*domain.Housing, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Housing), args.Error(1)
}

func (m *ListingServiceMock) DeleteHousing(ctx context.Context, actor domain.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *ListingServiceMock) GetHousing(ctx context.Context, id int64) (*domain.Housing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Housing), args.Error(1)
}

func (m *ListingServiceMock) ListHousing(ctx context.Context, availableOnly bool) ([]domain.Housing, error) {
	args := m.Called(ctx, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Housing), args.Error(1)
}

func (m *ListingServiceMock) CreateJob(ctx context.Context, actor domain.Actor, in service.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *ListingServiceMock) UpdateJob(ctx context.Context, actor domain.Actor, id int64, in service.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *ListingServiceMock) DeleteJob(ctx context.Context, actor domain.Actor, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *ListingServiceMock) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *ListingServiceMock) ListJobs(ctx context.Context, openOnly bool) ([]domain.Job, error) {
	args := m.Called(ctx, openOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Job), args.Error(1)
}

type HousingApplicationServiceMock struct {
	mock.Mock
}

var _ service.HousingApplicationService = (*HousingApplicationServiceMock)(nil)

func (m *HousingApplicationServiceMock) Submit(ctx context.Context, actor domain.Actor, housingID int64, notes string) (*domain.HousingApplication, error) {
	args := m.Called(ctx, actor, housingID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.HousingApplication), args.Error(1)
}

func (m *HousingApplicationServiceMock) Decide(ctx context.Context, actor domain.Actor, applicationID int64, decision domain.Decision) (*domain.HousingApplication, error) {
	args := m.Called(ctx, actor, applicationID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.HousingApplication), args.Error(1)
}

func (m *HousingApplicationServiceMock) List(ctx context.Context, actor domain.Actor) ([]domain.HousingApplication, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.HousingApplication), args.Error(1)
}

func (m *HousingApplicationServiceMock) History(ctx context.Context, actor domain.Actor, applicationID int64) ([]domain.ApplicationEvent, error) {
	args := m.Called(ctx, actor, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ApplicationEvent), args.Error(1)
}

type JobApplicationServiceMock struct {
	mock.Mock
}

var _ service.JobApplicationService = (*JobApplicationServiceMock)(nil)

func (m *JobApplicationServiceMock) Submit(ctx context.Context, actor domain.Actor, jobID int64, coverLetter, resume string) (*domain.JobApplication, error) {
	args := m.Called(ctx, actor, jobID, coverLetter, resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *JobApplicationServiceMock) Decide(ctx context.Context, actor domain.Actor, applicationID int64, decision domain.Decision) (*domain.JobApplication, error) {
	args := m.Called(ctx, actor, applicationID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *JobApplicationServiceMock) Advance(ctx context.Context, actor domain.Actor, applicationID int64, in service.AdvanceInput) (*domain.JobApplication, error) {
	args := m.Called(ctx, actor, applicationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *JobApplicationServiceMock) List(ctx context.Context, actor domain.Actor) ([]domain.JobApplication, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *JobApplicationServiceMock) History(ctx context.Context, actor domain.Actor, applicationID int64) ([]domain.ApplicationEvent, error) {
	args := m.Called(ctx, actor, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ApplicationEvent), args.Error(1)
}

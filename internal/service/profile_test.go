package service

import (
	"context"
	"testing"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileDeps struct {
	transactor *TransactorMock
	actors     *ActorRepositoryMock
	profiles   *ProfileRepositoryMock
}

func newProfileService() (*ProfileServiceImpl, profileDeps) {
	deps := profileDeps{
		transactor: new(TransactorMock),
		actors:     new(ActorRepositoryMock),
		profiles:   new(ProfileRepositoryMock),
	}

	return NewProfileService(deps.transactor, newTestLogger(), deps.actors, deps.profiles), deps
}

func (d profileDeps) assertExpectations(t *testing.T) {
	d.transactor.AssertExpectations(t)
	d.actors.AssertExpectations(t)
	d.profiles.AssertExpectations(t)
}

func TestProfileService_CreateRefugeeProfile(t *testing.T) {
	ctx := context.Background()
	in := RefugeeInput{Gender: domain.GenderFemale, FamilySize: 3, CountryOfOrigin: "Sudan"}

	t.Run("Creates a pending profile", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, true)
		expectActor(deps.actors, tx, bareRefugee)
		deps.profiles.On("CreateRefugee", mock.Anything, tx, mock.MatchedBy(func(r *domain.Refugee) bool {
			return r.ActorID == bareRefugee.ID && r.Status == domain.RegistrationPending && r.FamilySize == 3
		})).Run(func(args mock.Arguments) {
			args.Get(2).(*domain.Refugee).ID = 10
		}).Return(nil).Once()

		r, created, err := svc.CreateRefugeeProfile(ctx, bareRefugee, in)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(10), r.ID)
		deps.assertExpectations(t)
	})

	t.Run("Existing profile is returned unchanged", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, true)
		expectActor(deps.actors, tx, refugeeActor)
		existing := &domain.Refugee{ID: 10, ActorID: refugeeActor.ID, FamilySize: 5}
		deps.profiles.On("GetRefugee", mock.Anything, tx, int64(10)).Return(existing, nil).Once()

		r, created, err := svc.CreateRefugeeProfile(ctx, refugeeActor, in)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 5, r.FamilySize)
		deps.profiles.AssertNotCalled(t, "CreateRefugee", mock.Anything, mock.Anything, mock.Anything)
		deps.assertExpectations(t)
	})

	t.Run("Concurrent creation returns the winner", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, false)
		expectActor(deps.actors, tx, bareRefugee)
		deps.profiles.On("CreateRefugee", mock.Anything, tx, mock.Anything).Return(apperrors.ErrProfileExists).Once()
		deps.profiles.On("GetRefugeeByActor", ctx, deps.transactor, bareRefugee.ID).
			Return(&domain.Refugee{ID: 11, ActorID: bareRefugee.ID}, nil).Once()

		r, created, err := svc.CreateRefugeeProfile(ctx, bareRefugee, in)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(11), r.ID)
		deps.assertExpectations(t)
	})

	t.Run("NGO cannot create a refugee profile", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, false)
		expectActor(deps.actors, tx, ngoActor)

		_, _, err := svc.CreateRefugeeProfile(ctx, ngoActor, in)

		assert.ErrorIs(t, err, apperrors.ErrDenied)
		deps.assertExpectations(t)
	})
}

func TestProfileService_CreateNGOProfile(t *testing.T) {
	ctx := context.Background()
	bareNGO := domain.Actor{ID: "actor-ngo-bare", Role: domain.RoleNGO}

	svc, deps := newProfileService()
	tx, _ := expectTx(t, deps.transactor, true)
	expectActor(deps.actors, tx, bareNGO)
	deps.profiles.On("CreateNGO", mock.Anything, tx, mock.MatchedBy(func(n *domain.NGO) bool {
		return n.ActorID == bareNGO.ID && n.OrganizationName == "Shelter Now"
	})).Return(nil).Once()

	n, created, err := svc.CreateNGOProfile(ctx, bareNGO, NGOInput{OrganizationName: "Shelter Now"})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Shelter Now", n.OrganizationName)
	deps.assertExpectations(t)
}

func TestProfileService_GetRefugee(t *testing.T) {
	ctx := context.Background()
	refugee := &domain.Refugee{ID: 10, ActorID: refugeeActor.ID}

	testCases := []struct {
		name        string
		actor       domain.Actor
		linked      []int64
		expectedErr error
	}{
		{name: "Admin", actor: adminActor},
		{name: "Self", actor: refugeeActor},
		{name: "Linked NGO", actor: ngoActor, linked: []int64{1, 3}},
		{name: "Unlinked NGO", actor: otherNGO, linked: []int64{1}, expectedErr: apperrors.ErrDenied},
		{name: "Other refugee", actor: domain.Actor{ID: "x", Role: domain.RoleRefugee, Profile: domain.ProfileRef{Kind: domain.RefugeeProfile, ID: 12}}, expectedErr: apperrors.ErrDenied},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newProfileService()
			deps.profiles.On("GetRefugee", ctx, deps.transactor, int64(10)).Return(refugee, nil).Once()
			if tc.actor.Role == domain.RoleNGO {
				deps.profiles.On("LinkedNGOIDs", ctx, deps.transactor, int64(10)).Return(tc.linked, nil).Once()
			}

			r, err := svc.GetRefugee(ctx, tc.actor, 10)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, r)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(10), r.ID)
			}

			deps.assertExpectations(t)
		})
	}
}

func TestProfileService_ReviewRefugee(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin approves registration", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, true)
		expectActor(deps.actors, tx, adminActor)
		deps.profiles.On("SetRefugeeStatus", mock.Anything, tx, int64(10), domain.RegistrationApproved, mock.AnythingOfType("time.Time")).Return(nil).Once()
		deps.profiles.On("GetRefugee", mock.Anything, tx, int64(10)).
			Return(&domain.Refugee{ID: 10, Status: domain.RegistrationApproved}, nil).Once()

		r, err := svc.ReviewRefugee(ctx, adminActor, 10, domain.RegistrationApproved)

		require.NoError(t, err)
		assert.Equal(t, domain.RegistrationApproved, r.Status)
		deps.assertExpectations(t)
	})

	t.Run("NGO cannot review", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, false)
		expectActor(deps.actors, tx, ngoActor)

		_, err := svc.ReviewRefugee(ctx, ngoActor, 10, domain.RegistrationApproved)

		assert.ErrorIs(t, err, apperrors.ErrDenied)
		deps.assertExpectations(t)
	})
}

func TestProfileService_DeleteRefugee(t *testing.T) {
	ctx := context.Background()
	svc, deps := newProfileService()
	tx, _ := expectTx(t, deps.transactor, true)
	expectActor(deps.actors, tx, adminActor)
	deps.profiles.On("GetRefugee", mock.Anything, tx, int64(10)).Return(&domain.Refugee{ID: 10, ActorID: refugeeActor.ID}, nil).Once()
	deps.actors.On("DeleteActor", mock.Anything, tx, refugeeActor.ID).Return(nil).Once()

	require.NoError(t, svc.DeleteRefugee(ctx, adminActor, 10))
	deps.assertExpectations(t)
}

func TestProfileService_UpdateNGO(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner updates", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, true)
		expectActor(deps.actors, tx, ngoActor)
		deps.profiles.On("GetNGO", mock.Anything, tx, int64(1)).Return(&domain.NGO{ID: 1, ActorID: ngoActor.ID}, nil).Once()
		deps.profiles.On("UpdateNGO", mock.Anything, tx, mock.MatchedBy(func(n *domain.NGO) bool {
			return n.Location == "Amman"
		})).Return(nil).Once()

		n, err := svc.UpdateNGO(ctx, ngoActor, 1, NGOInput{OrganizationName: "Shelter Now", Location: "Amman"})

		require.NoError(t, err)
		assert.Equal(t, "Amman", n.Location)
		deps.assertExpectations(t)
	})

	t.Run("Other NGO is denied", func(t *testing.T) {
		svc, deps := newProfileService()
		tx, _ := expectTx(t, deps.transactor, false)
		expectActor(deps.actors, tx, otherNGO)
		deps.profiles.On("GetNGO", mock.Anything, tx, int64(1)).Return(&domain.NGO{ID: 1, ActorID: ngoActor.ID}, nil).Once()

		_, err := svc.UpdateNGO(ctx, otherNGO, 1, NGOInput{})

		assert.ErrorIs(t, err, apperrors.ErrDenied)
		deps.assertExpectations(t)
	})
}

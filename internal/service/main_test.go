package service

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor   = domain.Actor{ID: "actor-admin", Role: domain.RoleAdmin}
	ngoActor     = domain.Actor{ID: "actor-ngo", Role: domain.RoleNGO, Profile: domain.ProfileRef{Kind: domain.NGOProfile, ID: 1}}
	otherNGO     = domain.Actor{ID: "actor-ngo-2", Role: domain.RoleNGO, Profile: domain.ProfileRef{Kind: domain.NGOProfile, ID: 2}}
	refugeeActor = domain.Actor{ID: "actor-refugee", Role: domain.RoleRefugee, Profile: domain.ProfileRef{Kind: domain.RefugeeProfile, ID: 10}}
	bareRefugee  = domain.Actor{ID: "actor-refugee-bare", Role: domain.RoleRefugee}
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMockDBAndTx(t *testing.T) (*sqlx.DB, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, smock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	smock.ExpectBegin()
	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)
	return sqlxDB, tx, smock
}

// expectTx wires transactor to hand out a sqlmock transaction that must end
// with a commit when commit is true and with a rollback otherwise.
func expectTx(t *testing.T, transactor *TransactorMock, commit bool) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	_, tx, smock := newMockDBAndTx(t)
	if commit {
		smock.ExpectCommit()
	} else {
		smock.ExpectRollback()
	}

	transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(tx, nil).Once()

	return tx, smock
}

// expectActor makes the in-transaction re-read of actor return it unchanged.
func expectActor(actors *ActorRepositoryMock, tx *sqlx.Tx, actor domain.Actor) {
	a := actor
	actors.On("GetActor", mock.Anything, tx, actor.ID).Return(&a, nil).Once()
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/cryptox"
	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/server/config"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	usersrepo "github.com/dmitrijs2005/usermanager/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// failingRepo wraps a working repository and fails the selected calls.
type failingRepo struct {
	usersrepo.Repository
	getErr    error
	adminErr  error
	updateErr error
}

func (f *failingRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Repository.GetUserByLogin(ctx, login)
}

func (f *failingRepo) IsAdmin(ctx context.Context, login string) (bool, error) {
	if f.adminErr != nil {
		return false, f.adminErr
	}
	return f.Repository.IsAdmin(ctx, login)
}

func (f *failingRepo) Update(ctx context.Context, login string, patch models.UserPatch, by string, at time.Time) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.Repository.Update(ctx, login, patch, by, at)
}

// fakeRepoManager hands out the same repository for every DBTX and records
// whether it was asked for a transaction-bound one.
type fakeRepoManager struct {
	repo    usersrepo.Repository
	sawTx   bool
	handles int
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository {
	m.handles++
	if _, ok := db.(*sql.Tx); ok {
		m.sawTx = true
	}
	return m.repo
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newTxService(t *testing.T, db *sql.DB, repo usersrepo.Repository) (*UserService, *fakeRepoManager) {
	t.Helper()
	rm := &fakeRepoManager{repo: repo}
	cfg := &config.Config{SecretKey: testSecret, AccessTokenValidityDuration: time.Hour}
	s := NewUserService(db, rm, cryptox.NewBcryptHasher(bcrypt.MinCost), cfg)
	s.now = func() time.Time { return fixedNow }
	return s, rm
}

func seededMemory(t *testing.T) *usersrepo.MemoryRepository {
	t.Helper()
	repo := usersrepo.NewMemoryRepository()
	_, err := repo.Create(context.Background(), &models.User{Login: "root", Admin: true, CreatedOn: fixedNow})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), &models.User{Login: "bob", CreatedOn: fixedNow})
	require.NoError(t, err)
	return repo
}

func TestUpdate_CommitsTransaction(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	s, rm := newTxService(t, db, seededMemory(t))

	u, err := s.UpdateName(context.Background(), "bob", "Robert", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Robert", u.Name)
	assert.True(t, rm.sawTx, "repository must be bound to the transaction")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_RollsBackOnDenied(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	s, _ := newTxService(t, db, seededMemory(t))

	_, err := s.UpdateName(context.Background(), "root", "Mallory", "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_BeginError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	s, _ := newTxService(t, db, seededMemory(t))

	_, err := s.DeleteUser(context.Background(), "bob", true, "root")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conn")
}

func TestGetUserByLogin_UsesPoolOutsideTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	s, rm := newTxService(t, db, seededMemory(t))

	_, err := s.GetUserByLogin(context.Background(), "bob", "root")
	require.NoError(t, err)
	assert.False(t, rm.sawTx)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrors_AreInternal(t *testing.T) {
	tests := []struct {
		name string
		repo func(base usersrepo.Repository) usersrepo.Repository
		call func(s *UserService) error
	}{
		{
			name: "lookup fails",
			repo: func(base usersrepo.Repository) usersrepo.Repository {
				return &failingRepo{Repository: base, getErr: errBoom{}}
			},
			call: func(s *UserService) error {
				_, err := s.GetUserByLogin(context.Background(), "bob", "root")
				return err
			},
		},
		{
			name: "admin check fails",
			repo: func(base usersrepo.Repository) usersrepo.Repository {
				return &failingRepo{Repository: base, adminErr: errBoom{}}
			},
			call: func(s *UserService) error {
				_, err := s.ListActiveUsers(context.Background(), "root")
				return err
			},
		},
		{
			name: "update fails",
			repo: func(base usersrepo.Repository) usersrepo.Repository {
				return &failingRepo{Repository: base, updateErr: errBoom{}}
			},
			call: func(s *UserService) error {
				_, err := s.UpdateName(context.Background(), "bob", "Robert", "bob")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTxService(t, nil, tt.repo(seededMemory(t)))

			err := tt.call(s)
			assert.ErrorIs(t, err, common.ErrorInternal)
			assert.ErrorIs(t, err, errBoom{})
		})
	}
}

func TestUpdate_ConcurrentRevokeIsReported(t *testing.T) {
	base := seededMemory(t)
	repo := &failingRepo{Repository: base, updateErr: common.ErrorNotFound}
	s, _ := newTxService(t, nil, repo)

	_, err := base.Delete(context.Background(), "bob", true, "root", fixedNow)
	require.NoError(t, err)

	// authorize sees the revoked record first
	_, err = s.UpdateName(context.Background(), "bob", "Robert", "bob")
	assert.ErrorIs(t, err, common.ErrUserRevoked)

	// a miss reported by the write itself is explained the same way
	err = s.explainMiss(context.Background(), base, "bob", common.ErrorNotFound)
	assert.ErrorIs(t, err, common.ErrUserRevoked)

	err = s.explainMiss(context.Background(), base, "ghost", common.ErrorNotFound)
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	err = s.explainMiss(context.Background(), base, "bob", common.ErrorConflict)
	assert.ErrorIs(t, err, common.ErrLoginAlreadyExists)
}

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/cryptox"
	"github.com/dmitrijs2005/usermanager/internal/server/auth"
	"github.com/dmitrijs2005/usermanager/internal/server/config"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/dmitrijs2005/usermanager/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

const testSecret = "k"

// newMemoryService returns a service over a fresh in-memory store with an
// active admin "root" (password "Rootpass1").
func newMemoryService(t *testing.T) *UserService {
	t.Helper()
	cfg := &config.Config{SecretKey: testSecret, AccessTokenValidityDuration: time.Hour}
	s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), cryptox.NewBcryptHasher(bcrypt.MinCost), cfg)
	s.now = func() time.Time { return fixedNow }

	created, err := s.EnsureAdmin(context.Background(), "root", "Rootpass1")
	require.NoError(t, err)
	require.True(t, created)
	return s
}

func mustCreate(t *testing.T, s *UserService, login, requester string, mods ...func(*CreateUserInput)) *models.User {
	t.Helper()
	in := CreateUserInput{Login: login, Password: "Secret1", Name: "Name", Gender: models.GenderUnspecified}
	for _, m := range mods {
		m(&in)
	}
	u, err := s.CreateUser(context.Background(), in, requester)
	require.NoError(t, err)
	return u
}

func TestCreateUser_AdminFlag(t *testing.T) {
	s := newMemoryService(t)
	asAdmin := func(in *CreateUserInput) { in.Admin = true }

	byAdmin := mustCreate(t, s, "alice", "root", asAdmin)
	assert.True(t, byAdmin.Admin)
	assert.Equal(t, "root", byAdmin.CreatedBy)
	assert.True(t, byAdmin.CreatedOn.Equal(fixedNow))
	assert.Nil(t, byAdmin.ModifiedOn)

	bySelf := mustCreate(t, s, "bob", "", asAdmin)
	assert.False(t, bySelf.Admin, "self-registration cannot grant admin")
	assert.Empty(t, bySelf.CreatedBy)

	byUser := mustCreate(t, s, "carol", "bob", asAdmin)
	assert.False(t, byUser.Admin, "non-admin creator cannot grant admin")

	_, err := s.DeleteUser(context.Background(), "alice", true, "root")
	require.NoError(t, err)
	byRevokedAdmin := mustCreate(t, s, "dave", "alice", asAdmin)
	assert.False(t, byRevokedAdmin.Admin, "revoked admin is not an admin")
}

func TestCreateUser_HashesPassword(t *testing.T) {
	s := newMemoryService(t)
	u := mustCreate(t, s, "bob", "root")

	assert.NotEqual(t, "Secret1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Secret1")))
}

func TestCreateUser_NormalizesBirthday(t *testing.T) {
	s := newMemoryService(t)
	bday := time.Date(1990, 5, 17, 23, 15, 0, 0, time.UTC)
	u := mustCreate(t, s, "bob", "root", func(in *CreateUserInput) { in.Birthday = &bday })

	require.NotNil(t, u.Birthday)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), *u.Birthday)
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")

	_, err := s.CreateUser(context.Background(), CreateUserInput{Login: "bob", Password: "Secret1"}, "root")
	assert.ErrorIs(t, err, common.ErrLoginAlreadyExists)

	_, err = s.DeleteUser(context.Background(), "bob", true, "root")
	require.NoError(t, err)
	_, err = s.CreateUser(context.Background(), CreateUserInput{Login: "bob", Password: "Secret1"}, "")
	assert.ErrorIs(t, err, common.ErrLoginAlreadyExists, "revoked logins stay taken")
}

func TestCreateUser_InvalidGender(t *testing.T) {
	s := newMemoryService(t)
	_, err := s.CreateUser(context.Background(), CreateUserInput{Login: "bob", Password: "Secret1", Gender: 7}, "root")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestCreateUser_ConcurrentSameLogin(t *testing.T) {
	s := newMemoryService(t)

	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		success  int
		conflict int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateUser(context.Background(), CreateUserInput{Login: "bob", Password: "Secret1"}, "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, common.ErrLoginAlreadyExists):
				conflict++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, conflict)
}

func TestUpdates_SelfOrAdmin(t *testing.T) {
	ctx := context.Background()
	bday := time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC)
	name := "Robert"

	ops := map[string]func(s *UserService, login, requester string) error{
		"name": func(s *UserService, login, requester string) error {
			_, err := s.UpdateName(ctx, login, "Robert", requester)
			return err
		},
		"gender": func(s *UserService, login, requester string) error {
			_, err := s.UpdateGender(ctx, login, models.GenderMale, requester)
			return err
		},
		"birthday": func(s *UserService, login, requester string) error {
			_, err := s.UpdateBirthday(ctx, login, bday, requester)
			return err
		},
		"password": func(s *UserService, login, requester string) error {
			_, err := s.UpdatePassword(ctx, login, "Newpass1", requester)
			return err
		},
		"login": func(s *UserService, login, requester string) error {
			_, err := s.UpdateLogin(ctx, login, login+"2", requester)
			return err
		},
		"profile": func(s *UserService, login, requester string) error {
			_, err := s.UpdateProfile(ctx, login, ProfileInput{Name: &name}, requester)
			return err
		},
	}

	for opName, op := range ops {
		t.Run(opName, func(t *testing.T) {
			s := newMemoryService(t)
			mustCreate(t, s, "bob", "root")
			mustCreate(t, s, "alice", "root")

			assert.NoError(t, op(s, "bob", "bob"), "self")
			assert.NoError(t, op(s, "alice", "root"), "admin")
			assert.ErrorIs(t, op(s, "carol", "root"), common.ErrUserNotFound, "missing target")

			s2 := newMemoryService(t)
			mustCreate(t, s2, "bob", "root")
			mustCreate(t, s2, "alice", "root")
			assert.ErrorIs(t, op(s2, "alice", "bob"), common.ErrAccessDenied, "other user")
			assert.ErrorIs(t, op(s2, "alice", ""), common.ErrAccessDenied, "anonymous")

			_, err := s2.DeleteUser(ctx, "bob", true, "root")
			require.NoError(t, err)
			assert.ErrorIs(t, op(s2, "bob", "bob"), common.ErrUserRevoked, "revoked self")
			assert.ErrorIs(t, op(s2, "bob", "root"), common.ErrUserRevoked, "revoked by admin")
		})
	}
}

func TestUpdateName_StampsModification(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")

	u, err := s.UpdateName(context.Background(), "bob", "Robert", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Robert", u.Name)
	assert.Equal(t, "bob", u.ModifiedBy)
	require.NotNil(t, u.ModifiedOn)
	assert.True(t, u.ModifiedOn.Equal(fixedNow))
}

func TestUpdateLogin_Taken(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")
	mustCreate(t, s, "alice", "root")

	_, err := s.UpdateLogin(context.Background(), "bob", "alice", "bob")
	assert.ErrorIs(t, err, common.ErrLoginAlreadyExists)

	u, err := s.UpdateLogin(context.Background(), "bob", "robert", "bob")
	require.NoError(t, err)
	assert.Equal(t, "robert", u.Login)

	_, err = s.GetUserByLogin(context.Background(), "bob", "root")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestUpdatePassword_ChangesCredentials(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")

	_, err := s.UpdatePassword(context.Background(), "bob", "Newpass1", "bob")
	require.NoError(t, err)

	_, err = s.GetUserByCredentials(context.Background(), "bob", "Secret1", "bob")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	_, err = s.GetUserByCredentials(context.Background(), "bob", "Newpass1", "bob")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")

	_, err := s.UpdateProfile(context.Background(), "bob", ProfileInput{}, "bob")
	assert.ErrorIs(t, err, common.ErrorValidation)

	bad := models.Gender(9)
	_, err = s.UpdateProfile(context.Background(), "bob", ProfileInput{Gender: &bad}, "bob")
	assert.ErrorIs(t, err, common.ErrorValidation)

	name := "Bobby"
	gender := models.GenderMale
	bday := time.Date(1980, 2, 29, 10, 0, 0, 0, time.UTC)
	u, err := s.UpdateProfile(context.Background(), "bob", ProfileInput{Name: &name, Gender: &gender, Birthday: &bday}, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bobby", u.Name)
	assert.Equal(t, models.GenderMale, u.Gender)
	require.NotNil(t, u.Birthday)
	assert.Equal(t, time.Date(1980, 2, 29, 0, 0, 0, 0, time.UTC), *u.Birthday)
}

func TestGetUserByLogin_AdminOnly(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")

	u, err := s.GetUserByLogin(context.Background(), "bob", "root")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Login)

	_, err = s.GetUserByLogin(context.Background(), "bob", "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied, "self is not enough")

	_, err = s.GetUserByLogin(context.Background(), "ghost", "root")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetUserByCredentials(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")
	ctx := context.Background()

	u, err := s.GetUserByCredentials(ctx, "bob", "Secret1", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Login)

	_, err = s.GetUserByCredentials(ctx, "bob", "Secret1", "root")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	_, err = s.GetUserByCredentials(ctx, "bob", "Wrong1", "bob")
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = s.GetUserByCredentials(ctx, "ghost", "Secret1", "ghost")
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = s.DeleteUser(ctx, "bob", true, "root")
	require.NoError(t, err)
	_, err = s.GetUserByCredentials(ctx, "bob", "Secret1", "bob")
	assert.ErrorIs(t, err, common.ErrUserRevoked)
}

func TestListActiveUsers(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")
	mustCreate(t, s, "alice", "root")
	_, err := s.DeleteUser(context.Background(), "alice", true, "root")
	require.NoError(t, err)

	list, err := s.ListActiveUsers(context.Background(), "root")
	require.NoError(t, err)
	logins := make([]string, 0, len(list))
	for _, u := range list {
		logins = append(logins, u.Login)
		assert.True(t, u.IsActive())
	}
	assert.ElementsMatch(t, []string{"root", "bob"}, logins)

	_, err = s.ListActiveUsers(context.Background(), "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied)
}

func TestListUsersOlderThan(t *testing.T) {
	s := newMemoryService(t)
	adult := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	minor := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	mustCreate(t, s, "adult", "root", func(in *CreateUserInput) { in.Birthday = &adult })
	mustCreate(t, s, "minor", "root", func(in *CreateUserInput) { in.Birthday = &minor })
	mustCreate(t, s, "nobday", "root")

	list, err := s.ListUsersOlderThan(context.Background(), 18, "root")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "adult", list[0].Login)

	_, err = s.ListUsersOlderThan(context.Background(), -1, "root")
	assert.ErrorIs(t, err, common.ErrInvalidAge)

	_, err = s.ListUsersOlderThan(context.Background(), -1, "adult")
	assert.ErrorIs(t, err, common.ErrAccessDenied, "permission is checked before the age")
}

func TestDeleteUser_SoftThenHard(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")
	ctx := context.Background()

	_, err := s.DeleteUser(ctx, "bob", true, "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied, "self delete is admin-only")

	revoked, err := s.DeleteUser(ctx, "bob", true, "root")
	require.NoError(t, err)
	assert.False(t, revoked.IsActive())
	assert.Equal(t, "root", revoked.RevokedBy)
	require.NotNil(t, revoked.RevokedOn)
	assert.True(t, revoked.RevokedOn.Equal(fixedNow))

	seen, err := s.GetUserByLogin(ctx, "bob", "root")
	require.NoError(t, err)
	assert.False(t, seen.IsActive(), "soft-deleted user stays visible to admins")

	_, err = s.DeleteUser(ctx, "bob", true, "root")
	assert.ErrorIs(t, err, common.ErrUserRevoked)

	_, err = s.DeleteUser(ctx, "bob", false, "root")
	require.NoError(t, err)

	_, err = s.GetUserByLogin(ctx, "bob", "root")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	_, err = s.DeleteUser(ctx, "bob", false, "root")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestRestoreUser(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")
	ctx := context.Background()

	_, err := s.RestoreUser(ctx, "bob", "root")
	assert.ErrorIs(t, err, common.ErrUserNotFound, "restore of an active user")

	_, err = s.DeleteUser(ctx, "bob", true, "root")
	require.NoError(t, err)

	_, err = s.RestoreUser(ctx, "bob", "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	restored, err := s.RestoreUser(ctx, "bob", "root")
	require.NoError(t, err)
	assert.True(t, restored.IsActive())
	assert.Empty(t, restored.RevokedBy)
	assert.Equal(t, "root", restored.ModifiedBy)

	_, err = s.RestoreUser(ctx, "ghost", "root")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

// TestScenarios walks the lifecycle of one user end to end.
func TestScenarios(t *testing.T) {
	s := newMemoryService(t)
	ctx := context.Background()

	bob := mustCreate(t, s, "bob", "root")
	assert.False(t, bob.Admin)
	mustCreate(t, s, "alice", "root")

	_, err := s.UpdateName(ctx, "bob", "Bobby", "bob")
	require.NoError(t, err)

	_, err = s.UpdateName(ctx, "alice", "Mallory", "bob")
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	_, err = s.DeleteUser(ctx, "bob", true, "root")
	require.NoError(t, err)
	_, err = s.UpdatePassword(ctx, "bob", "Newpass1", "bob")
	assert.ErrorIs(t, err, common.ErrUserRevoked)

	_, err = s.RestoreUser(ctx, "bob", "root")
	require.NoError(t, err)
	_, err = s.UpdatePassword(ctx, "bob", "Newpass1", "bob")
	assert.NoError(t, err)

	_, err = s.CreateUser(ctx, CreateUserInput{Login: "bob", Password: "Secret1"}, "root")
	assert.ErrorIs(t, err, common.ErrLoginAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	s := newMemoryService(t)
	mustCreate(t, s, "bob", "root")
	ctx := context.Background()

	res, err := s.Authenticate(ctx, "bob", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "bob", res.User.Login)

	login, err := auth.GetLoginFromToken(res.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "bob", login)

	_, err = s.Authenticate(ctx, "bob", "Wrong1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = s.Authenticate(ctx, "ghost", "Secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.DeleteUser(ctx, "bob", true, "root")
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, "bob", "Secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized, "revoked users cannot log in")
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	s := newMemoryService(t)

	created, err := s.EnsureAdmin(context.Background(), "root", "Other1")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = s.Authenticate(context.Background(), "root", "Rootpass1")
	assert.NoError(t, err, "existing admin keeps its password")
}

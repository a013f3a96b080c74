// Package services contains server-side business logic. UserService decides
// who may read or change a user record, enforces the revoke/restore
// lifecycle, and issues access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/cryptox"
	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/server/auth"
	"github.com/dmitrijs2005/usermanager/internal/server/config"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/dmitrijs2005/usermanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usermanager/internal/server/repositories/users"
)

// CreateUserInput carries the fields of a new account. Password is plain
// text and is hashed before it reaches the store.
type CreateUserInput struct {
	Login    string
	Password string
	Name     string
	Gender   models.Gender
	Birthday *time.Time
	Admin    bool
}

// ProfileInput is a partial update of the descriptive fields of a user.
type ProfileInput struct {
	Name     *string
	Gender   *models.Gender
	Birthday *time.Time
}

// AuthResult is a freshly issued access token together with its owner.
type AuthResult struct {
	AccessToken string
	User        *models.User
}

// accessRule parameterizes authorize for one operation.
type accessRule struct {
	adminOnly     bool
	allowSelf     bool
	requireActive bool
}

var (
	selfRule  = accessRule{allowSelf: true, requireActive: true}
	adminRule = accessRule{adminOnly: true}
)

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      cryptox.Hasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	now                         func() time.Time
}

// NewUserService constructs a UserService. A nil db means the repository
// manager needs no connection (the in-memory store); mutations then run
// without a transaction.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		now:                         func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser registers a new account. An empty requester is a
// self-registration. The admin flag is kept only when the requester is an
// active administrator.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput, requester string) (*models.User, error) {
	if !in.Gender.Valid() {
		return nil, fmt.Errorf("%w: gender %d", common.ErrorValidation, in.Gender)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, internal(err)
	}

	var created *models.User
	err = s.inTx(ctx, func(ctx context.Context, repo users.Repository) error {
		available, err := repo.IsLoginAvailable(ctx, in.Login)
		if err != nil {
			return internal(err)
		}
		if !available {
			return common.ErrLoginAlreadyExists
		}

		admin := false
		if in.Admin {
			if admin, err = s.isAdmin(ctx, repo, requester); err != nil {
				return err
			}
		}

		user := &models.User{
			Login:        in.Login,
			PasswordHash: hash,
			Name:         in.Name,
			Gender:       in.Gender,
			Birthday:     dateOnly(in.Birthday),
			Admin:        admin,
			CreatedOn:    s.now(),
			CreatedBy:    requester,
		}

		created, err = repo.Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrorConflict) {
				return common.ErrLoginAlreadyExists
			}
			return internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *UserService) UpdateName(ctx context.Context, login, name, requester string) (*models.User, error) {
	return s.update(ctx, login, requester, models.UserPatch{Name: &name})
}

func (s *UserService) UpdateGender(ctx context.Context, login string, gender models.Gender, requester string) (*models.User, error) {
	if !gender.Valid() {
		return nil, fmt.Errorf("%w: gender %d", common.ErrorValidation, gender)
	}
	return s.update(ctx, login, requester, models.UserPatch{Gender: &gender})
}

func (s *UserService) UpdateBirthday(ctx context.Context, login string, birthday time.Time, requester string) (*models.User, error) {
	return s.update(ctx, login, requester, models.UserPatch{Birthday: dateOnly(&birthday)})
}

func (s *UserService) UpdatePassword(ctx context.Context, login, password, requester string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, internal(err)
	}
	return s.update(ctx, login, requester, models.UserPatch{PasswordHash: &hash})
}

// UpdateLogin renames a user. The new login must not be held by any record,
// revoked ones included.
func (s *UserService) UpdateLogin(ctx context.Context, login, newLogin, requester string) (*models.User, error) {
	return s.update(ctx, login, requester, models.UserPatch{Login: &newLogin})
}

// UpdateProfile applies name, gender and birthday changes in one write.
func (s *UserService) UpdateProfile(ctx context.Context, login string, in ProfileInput, requester string) (*models.User, error) {
	patch := models.UserPatch{Name: in.Name, Gender: in.Gender, Birthday: dateOnly(in.Birthday)}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrorValidation)
	}
	if patch.Gender != nil && !patch.Gender.Valid() {
		return nil, fmt.Errorf("%w: gender %d", common.ErrorValidation, *patch.Gender)
	}
	return s.update(ctx, login, requester, patch)
}

// GetUserByLogin is the administrator's view of any record, revoked or not.
func (s *UserService) GetUserByLogin(ctx context.Context, login, requester string) (*models.User, error) {
	return s.authorize(ctx, s.users(), login, requester, adminRule)
}

// GetUserByCredentials lets a user fetch their own active record by
// presenting the password again. A wrong password reads as a missing user.
func (s *UserService) GetUserByCredentials(ctx context.Context, login, password, requester string) (*models.User, error) {
	if login != requester {
		return nil, common.ErrAccessDenied
	}

	user, err := s.users().GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, internal(err)
	}
	if !user.IsActive() {
		return nil, common.ErrUserRevoked
	}

	if err := s.hasher.Compare(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return nil, common.ErrUserNotFound
		}
		return nil, internal(err)
	}

	return user, nil
}

// ListActiveUsers returns non-revoked users, oldest account first.
func (s *UserService) ListActiveUsers(ctx context.Context, requester string) ([]*models.User, error) {
	repo := s.users()
	if err := s.requireAdmin(ctx, repo, requester); err != nil {
		return nil, err
	}

	list, err := repo.ListActive(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

// ListUsersOlderThan returns active users at least age full years old today.
func (s *UserService) ListUsersOlderThan(ctx context.Context, age int, requester string) ([]*models.User, error) {
	repo := s.users()
	if err := s.requireAdmin(ctx, repo, requester); err != nil {
		return nil, err
	}
	if age < 0 {
		return nil, common.ErrInvalidAge
	}

	list, err := repo.ListOlderThan(ctx, age, s.now())
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

// DeleteUser revokes (soft) or removes (hard) a user and returns the record
// as it was affected. Soft-deleting an already revoked user is an error.
func (s *UserService) DeleteUser(ctx context.Context, login string, soft bool, requester string) (*models.User, error) {
	var deleted *models.User
	err := s.inTx(ctx, func(ctx context.Context, repo users.Repository) error {
		target, err := s.authorize(ctx, repo, login, requester, adminRule)
		if err != nil {
			return err
		}
		if soft && !target.IsActive() {
			return common.ErrUserRevoked
		}

		deleted, err = repo.Delete(ctx, login, soft, requester, s.now())
		if err != nil {
			return s.explainMiss(ctx, repo, login, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// RestoreUser reactivates a revoked user. Restoring an active or missing
// user fails with ErrUserNotFound.
func (s *UserService) RestoreUser(ctx context.Context, login, requester string) (*models.User, error) {
	var restored *models.User
	err := s.inTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if _, err := s.authorize(ctx, repo, login, requester, adminRule); err != nil {
			return err
		}

		var err error
		restored, err = repo.Restore(ctx, login, requester, s.now())
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUserNotFound
			}
			return internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return restored, nil
}

// Authenticate checks credentials of an active user and issues an access
// token. Every credential failure is reported as ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*AuthResult, error) {
	user, err := s.users().GetActiveUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internal(err)
	}

	if err := s.hasher.Compare(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return nil, common.ErrorUnauthorized
		}
		return nil, internal(err)
	}

	token, err := auth.GenerateToken(user.Login, user.Name, user.Admin, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, internal(err)
	}

	return &AuthResult{AccessToken: token, User: user}, nil
}

// EnsureAdmin creates the bootstrap administrator unless the login is
// already taken. It reports whether a record was created.
func (s *UserService) EnsureAdmin(ctx context.Context, login, password string) (bool, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, internal(err)
	}

	_, err = s.users().Create(ctx, &models.User{
		Login:        login,
		PasswordHash: hash,
		Name:         "Administrator",
		Gender:       models.GenderUnspecified,
		Admin:        true,
		CreatedOn:    s.now(),
		CreatedBy:    login,
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return false, nil
		}
		return false, internal(err)
	}

	return true, nil
}

// authorize loads the target and checks that requester may act on it
// under rule.
func (s *UserService) authorize(ctx context.Context, repo users.Repository, target, requester string, rule accessRule) (*models.User, error) {
	user, err := repo.GetUserByLogin(ctx, target)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, internal(err)
	}

	if rule.requireActive && !user.IsActive() {
		return nil, common.ErrUserRevoked
	}

	isAdmin, err := s.isAdmin(ctx, repo, requester)
	if err != nil {
		return nil, err
	}
	isSelf := requester != "" && target == requester

	permitted := isAdmin
	if !rule.adminOnly && rule.allowSelf && isSelf {
		permitted = true
	}
	if !permitted {
		return nil, common.ErrAccessDenied
	}

	return user, nil
}

func (s *UserService) requireAdmin(ctx context.Context, repo users.Repository, requester string) error {
	isAdmin, err := s.isAdmin(ctx, repo, requester)
	if err != nil {
		return err
	}
	if !isAdmin {
		return common.ErrAccessDenied
	}
	return nil
}

func (s *UserService) isAdmin(ctx context.Context, repo users.Repository, requester string) (bool, error) {
	if requester == "" {
		return false, nil
	}
	ok, err := repo.IsAdmin(ctx, requester)
	if err != nil {
		return false, internal(err)
	}
	return ok, nil
}

// update runs authorize and the conditional write in one transaction.
func (s *UserService) update(ctx context.Context, login, requester string, patch models.UserPatch) (*models.User, error) {
	var updated *models.User
	err := s.inTx(ctx, func(ctx context.Context, repo users.Repository) error {
		if _, err := s.authorize(ctx, repo, login, requester, selfRule); err != nil {
			return err
		}

		if patch.Login != nil {
			available, err := repo.IsLoginAvailable(ctx, *patch.Login)
			if err != nil {
				return internal(err)
			}
			if !available {
				return common.ErrLoginAlreadyExists
			}
		}

		var err error
		updated, err = repo.Update(ctx, login, patch, requester, s.now())
		if err != nil {
			return s.explainMiss(ctx, repo, login, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// explainMiss turns a failed conditional write into a policy outcome. The
// record may have been revoked or removed after authorize read it.
func (s *UserService) explainMiss(ctx context.Context, repo users.Repository, login string, err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return common.ErrLoginAlreadyExists
	case errors.Is(err, common.ErrorNotFound):
		user, getErr := repo.GetUserByLogin(ctx, login)
		switch {
		case getErr == nil && !user.IsActive():
			return common.ErrUserRevoked
		case getErr == nil, errors.Is(getErr, common.ErrorNotFound):
			return common.ErrUserNotFound
		default:
			return internal(getErr)
		}
	default:
		return internal(err)
	}
}

func (s *UserService) users() users.Repository {
	return s.repomanager.Users(dbx.Handle(s.db))
}

// inTx binds the repository to one transaction, or to the in-memory store
// when the service has no database.
func (s *UserService) inTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	return dbx.Run(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, s.repomanager.Users(tx))
	})
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", common.ErrorInternal, err)
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := models.DateOnly(*t)
	return &d
}

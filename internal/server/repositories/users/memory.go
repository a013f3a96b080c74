package users

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/google/uuid"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps users in a map keyed by login. Every operation holds
// the mutex for its whole check-and-write, and callers only ever see clones.
type MemoryRepository struct {
	mu      sync.RWMutex
	byLogin map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byLogin: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLogin[user.Login]; ok {
		return nil, fmt.Errorf("%w: login %q", common.ErrorConflict, user.Login)
	}

	u := user.Clone()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.byLogin[u.Login] = u

	return u.Clone(), nil
}

func (r *MemoryRepository) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u.Clone(), nil
}

func (r *MemoryRepository) GetActiveUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	if !ok || !u.IsActive() {
		return nil, common.ErrorNotFound
	}
	return u.Clone(), nil
}

func (r *MemoryRepository) IsLoginAvailable(_ context.Context, login string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, taken := r.byLogin[login]
	return !taken, nil
}

func (r *MemoryRepository) IsAdmin(_ context.Context, login string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	return ok && u.Admin && u.IsActive(), nil
}

func (r *MemoryRepository) IsActive(_ context.Context, login string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	return ok && u.IsActive(), nil
}

func (r *MemoryRepository) ListActive(_ context.Context) ([]*models.User, error) {
	return r.list(func(u *models.User) bool { return true }), nil
}

func (r *MemoryRepository) ListOlderThan(_ context.Context, age int, asOf time.Time) ([]*models.User, error) {
	cutoff := models.BirthdayCutoff(asOf, age)
	return r.list(func(u *models.User) bool {
		return u.Birthday != nil && !models.DateOnly(*u.Birthday).After(cutoff)
	}), nil
}

// list returns clones of the active users accepted by keep, oldest first.
func (r *MemoryRepository) list(keep func(*models.User) bool) []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.byLogin))
	for _, u := range r.byLogin {
		if u.IsActive() && keep(u) {
			result = append(result, u.Clone())
		}
	}

	slices.SortFunc(result, func(a, b *models.User) int {
		if c := a.CreatedOn.Compare(b.CreatedOn); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return result
}

func (r *MemoryRepository) Update(_ context.Context, login string, patch models.UserPatch, modifiedBy string, at time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byLogin[login]
	if !ok || !u.IsActive() {
		return nil, common.ErrorNotFound
	}

	if patch.Login != nil && *patch.Login != login {
		if _, taken := r.byLogin[*patch.Login]; taken {
			return nil, fmt.Errorf("%w: login %q", common.ErrorConflict, *patch.Login)
		}
	}

	updated := u.Clone()
	patch.Apply(updated)
	t := at
	updated.ModifiedOn = &t
	updated.ModifiedBy = modifiedBy

	delete(r.byLogin, login)
	r.byLogin[updated.Login] = updated

	return updated.Clone(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, login string, soft bool, revokedBy string, at time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if !soft {
		delete(r.byLogin, login)
		return u.Clone(), nil
	}

	if !u.IsActive() {
		return nil, common.ErrorNotFound
	}

	t := at
	u.RevokedOn = &t
	u.RevokedBy = revokedBy
	u.ModifiedOn = &t
	u.ModifiedBy = revokedBy

	return u.Clone(), nil
}

func (r *MemoryRepository) Restore(_ context.Context, login string, modifiedBy string, at time.Time) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byLogin[login]
	if !ok || u.IsActive() {
		return nil, common.ErrorNotFound
	}

	t := at
	u.RevokedOn = nil
	u.RevokedBy = ""
	u.ModifiedOn = &t
	u.ModifiedBy = modifiedBy

	return u.Clone(), nil
}

// Package users is the storage layer for user records. It owns uniqueness
// and existence queries and nothing else; authorization lives in the service.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/server/models"
)

// Repository is the user store. Lookups that find nothing return
// common.ErrorNotFound; writes that would duplicate a login return
// common.ErrorConflict. Conditional writes (update, soft delete, restore)
// match only records in the required state and report a miss as
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetActiveUserByLogin(ctx context.Context, login string) (*models.User, error)

	IsLoginAvailable(ctx context.Context, login string) (bool, error)
	IsAdmin(ctx context.Context, login string) (bool, error)
	IsActive(ctx context.Context, login string) (bool, error)

	ListActive(ctx context.Context) ([]*models.User, error)
	ListOlderThan(ctx context.Context, age int, asOf time.Time) ([]*models.User, error)

	Update(ctx context.Context, login string, patch models.UserPatch, modifiedBy string, at time.Time) (*models.User, error)
	Delete(ctx context.Context, login string, soft bool, revokedBy string, at time.Time) (*models.User, error)
	Restore(ctx context.Context, login string, modifiedBy string, at time.Time) (*models.User, error)
}

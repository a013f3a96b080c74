package client

import (
	"context"

	"github.com/dmitrijs2005/usermanager/internal/server/api"
)

// Client is the user API as seen by the CLI.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Login(ctx context.Context, login string, password []byte) (*api.AuthenticatedUser, error)
	Logout()
	CreateUser(ctx context.Context, req *api.CreateUserRequest) (*api.UserSummary, error)
	GetUser(ctx context.Context, login string) (*api.UserDetail, error)
	ListActiveUsers(ctx context.Context) ([]api.UserSummary, error)
	ListUsersOlderThan(ctx context.Context, age int) ([]api.UserSummary, error)
	UpdatePassword(ctx context.Context, login string, password []byte) error
	DeleteUser(ctx context.Context, login string, soft bool) (*api.UserSummary, error)
	RestoreUser(ctx context.Context, login string) (*api.UserSummary, error)
}

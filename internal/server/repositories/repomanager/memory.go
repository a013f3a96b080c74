package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/server/repositories/users"
)

// MemoryRepositoryManager serves a single in-memory user store. The DBTX
// argument is ignored, since there is no database behind it.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

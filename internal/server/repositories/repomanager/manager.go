package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a connection or an open
// transaction, and prepares the schema they need.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}

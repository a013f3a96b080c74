// Package dbx holds the storage handle shared by repositories and the
// transaction runner used by the user service.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is the part of database/sql the repositories need. *sql.DB and
// *sql.Tx both satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Handle returns db as a DBTX, or a nil DBTX when db is nil. Storage that
// needs no database (the in-memory store) receives the nil handle.
func Handle(db *sql.DB) DBTX {
	if db == nil {
		return nil
	}
	return db
}

// WithTx runs fn inside a transaction on db. It commits when fn returns nil
// and rolls back when fn fails or panics; panics are rethrown. The error
// returned by fn is kept intact for errors.Is.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("commit tx: %w", cErr)
		}
	}()

	return fn(ctx, tx)
}

// Run is WithTx for callers whose storage may live outside a database: with
// a nil db, fn runs directly with a nil handle.
func Run(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) error {
	if db == nil {
		return fn(ctx, nil)
	}
	return WithTx(ctx, db, nil, fn)
}

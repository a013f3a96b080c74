package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/dbx"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, login, password_hash, name, gender, birthday, admin,
		 created_on, created_by, modified_on, modified_by, revoked_on, revoked_by`

var _ Repository = (*PostgresRepository)(nil)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user unless the login is taken. The insert and the
// uniqueness check are one statement, so concurrent creates of the same
// login produce exactly one row.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u := user.Clone()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (` + userColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (login) DO NOTHING
		 RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		u.ID, u.Login, u.PasswordHash, u.Name, int(u.Gender), nullTime(u.Birthday), u.Admin,
		u.CreatedOn, nullString(u.CreatedBy), nullTime(u.ModifiedOn), nullString(u.ModifiedBy),
		nullTime(u.RevokedOn), nullString(u.RevokedBy))

	created, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: login %q", common.ErrorConflict, u.Login)
		}
		return nil, dbError(err)
	}

	return created, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE login = $1`

	return r.queryUser(ctx, query, login)
}

func (r *PostgresRepository) GetActiveUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE login = $1 AND revoked_on IS NULL`

	return r.queryUser(ctx, query, login)
}

func (r *PostgresRepository) IsLoginAvailable(ctx context.Context, login string) (bool, error) {
	query := `SELECT NOT EXISTS (SELECT 1 FROM users WHERE login = $1)`
	return r.queryBool(ctx, query, login)
}

// IsAdmin is true only for an existing, non-revoked administrator.
func (r *PostgresRepository) IsAdmin(ctx context.Context, login string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE login = $1 AND admin AND revoked_on IS NULL)`
	return r.queryBool(ctx, query, login)
}

func (r *PostgresRepository) IsActive(ctx context.Context, login string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE login = $1 AND revoked_on IS NULL)`
	return r.queryBool(ctx, query, login)
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE revoked_on IS NULL
		 ORDER BY created_on, id`

	return r.queryUsers(ctx, query)
}

func (r *PostgresRepository) ListOlderThan(ctx context.Context, age int, asOf time.Time) ([]*models.User, error) {
	query :=
		`SELECT ` + userColumns + ` FROM users
		 WHERE revoked_on IS NULL AND birthday IS NOT NULL AND birthday <= $1
		 ORDER BY created_on, id`

	return r.queryUsers(ctx, query, models.BirthdayCutoff(asOf, age))
}

// Update applies the patch to an active user in a single conditional
// statement. Revoked or missing users match no row.
func (r *PostgresRepository) Update(ctx context.Context, login string, patch models.UserPatch, modifiedBy string, at time.Time) (*models.User, error) {
	query :=
		`UPDATE users SET
		 login = COALESCE($2, login),
		 password_hash = COALESCE($3, password_hash),
		 name = COALESCE($4, name),
		 gender = COALESCE($5, gender),
		 birthday = COALESCE($6, birthday),
		 modified_on = $7,
		 modified_by = $8
		 WHERE login = $1 AND revoked_on IS NULL
		 RETURNING ` + userColumns

	var gender any
	if patch.Gender != nil {
		gender = int(*patch.Gender)
	}

	return r.queryUser(ctx, query, login,
		nullStringPtr(patch.Login), nullStringPtr(patch.PasswordHash), nullStringPtr(patch.Name),
		gender, nullTime(patch.Birthday), at, modifiedBy)
}

// Delete revokes an active user (soft) or removes the record for good.
// The affected record is returned as it is after the statement.
func (r *PostgresRepository) Delete(ctx context.Context, login string, soft bool, revokedBy string, at time.Time) (*models.User, error) {
	if !soft {
		query :=
			`DELETE FROM users
			 WHERE login = $1
			 RETURNING ` + userColumns

		return r.queryUser(ctx, query, login)
	}

	query :=
		`UPDATE users SET
		 revoked_on = $2,
		 revoked_by = $3,
		 modified_on = $2,
		 modified_by = $3
		 WHERE login = $1 AND revoked_on IS NULL
		 RETURNING ` + userColumns

	return r.queryUser(ctx, query, login, at, revokedBy)
}

func (r *PostgresRepository) Restore(ctx context.Context, login string, modifiedBy string, at time.Time) (*models.User, error) {
	query :=
		`UPDATE users SET
		 revoked_on = NULL,
		 revoked_by = NULL,
		 modified_on = $2,
		 modified_by = $3
		 WHERE login = $1 AND revoked_on IS NOT NULL
		 RETURNING ` + userColumns

	return r.queryUser(ctx, query, login, at, modifiedBy)
}

func (r *PostgresRepository) queryUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbError(err)
	}
	return user, nil
}

func (r *PostgresRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, dbError(err)
		}
		result = append(result, user)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError(err)
	}

	return result, nil
}

func (r *PostgresRepository) queryBool(ctx context.Context, query string, args ...any) (bool, error) {
	var b bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&b); err != nil {
		return false, dbError(err)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                                models.User
		gender                           int
		birthday, modifiedOn, revokedOn  sql.NullTime
		createdBy, modifiedBy, revokedBy sql.NullString
	)

	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Name, &gender, &birthday, &u.Admin,
		&u.CreatedOn, &createdBy, &modifiedOn, &modifiedBy, &revokedOn, &revokedBy)
	if err != nil {
		return nil, err
	}

	u.Gender = models.Gender(gender)
	u.Birthday = timePtr(birthday)
	u.CreatedBy = createdBy.String
	u.ModifiedOn = timePtr(modifiedOn)
	u.ModifiedBy = modifiedBy.String
	u.RevokedOn = timePtr(revokedOn)
	u.RevokedBy = revokedBy.String

	return &u, nil
}

// dbError marks unique violations as conflicts and wraps everything else.
func dbError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", common.ErrorConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("db error: %w", err)
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullStringPtr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var columns = []string{
	"id", "login", "password_hash", "name", "gender", "birthday", "admin",
	"created_on", "created_by", "modified_on", "modified_by", "revoked_on", "revoked_by",
}

var (
	createdOn = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	changedOn = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	birthday  = time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func activeRow(login string) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow("u-1", login, "hash", "Alice", int64(0), birthday, false,
			createdOn, "admin", nil, nil, nil, nil)
}

func revokedRow(login string) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow("u-1", login, "hash", "Alice", int64(0), nil, false,
			createdOn, "admin", changedOn, "admin", changedOn, "admin")
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*login,.*revoked_by\)\s*VALUES\s*\(\$1,.*\$13\)\s*ON\s+CONFLICT\s+\(login\)\s+DO\s+NOTHING\s+RETURNING\s+id,`

	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "alice", "hash", "Alice", 0, birthday, false,
			createdOn, "admin", nil, nil, nil, nil).
		WillReturnRows(activeRow("alice"))

	b := birthday
	u := &models.User{
		Login: "alice", PasswordHash: "hash", Name: "Alice", Gender: models.GenderFemale,
		Birthday: &b, CreatedOn: createdOn, CreatedBy: "admin",
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" || got.Login != "alice" || got.Birthday == nil || !got.Birthday.Equal(birthday) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.ModifiedOn != nil || got.RevokedOn != nil || got.CreatedBy != "admin" {
		t.Fatalf("unexpected audit fields: %+v", got)
	}
	if u.ID != "" {
		t.Fatalf("input must not be mutated, got ID %q", u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_LoginTaken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Create(context.Background(), &models.User{Login: "alice", CreatedOn: createdOn})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_pkey"})

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", Login: "alice", CreatedOn: createdOn})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Login: "alice", CreatedOn: createdOn})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByLogin_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*revoked_by\s+FROM\s+users\s+WHERE\s+login\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(revokedRow("alice"))

	got, err := repo.GetUserByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserByLogin error: %v", err)
	}
	if got.IsActive() || got.RevokedBy != "admin" || got.Birthday != nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+login\s*=\s*\$1\s*$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetActiveUserByLogin_FiltersRevoked(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+login\s*=\s*\$1\s+AND\s+revoked_on\s+IS\s+NULL\s*$`

	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActiveUserByLogin(context.Background(), "alice")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		query string
		call  func(r *PostgresRepository) (bool, error)
		value bool
	}{
		{
			name:  "login available",
			query: `(?s)^SELECT\s+NOT\s+EXISTS\s+\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+login\s*=\s*\$1\)$`,
			call: func(r *PostgresRepository) (bool, error) {
				return r.IsLoginAvailable(context.Background(), "alice")
			},
			value: true,
		},
		{
			name:  "is admin",
			query: `(?s)^SELECT\s+EXISTS\s+\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+login\s*=\s*\$1\s+AND\s+admin\s+AND\s+revoked_on\s+IS\s+NULL\)$`,
			call: func(r *PostgresRepository) (bool, error) {
				return r.IsAdmin(context.Background(), "alice")
			},
			value: false,
		},
		{
			name:  "is active",
			query: `(?s)^SELECT\s+EXISTS\s+\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+login\s*=\s*\$1\s+AND\s+revoked_on\s+IS\s+NULL\)$`,
			call: func(r *PostgresRepository) (bool, error) {
				return r.IsActive(context.Background(), "alice")
			},
			value: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(tt.query).
				WithArgs("alice").
				WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(tt.value))

			got, err := tt.call(repo)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.value {
				t.Fatalf("got %v, want %v", got, tt.value)
			}
		})
	}
}

func TestPredicate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+EXISTS`).
		WillReturnError(errors.New("boom"))

	_, err := repo.IsAdmin(context.Background(), "alice")
	if err == nil || !regexp.MustCompile(`db error: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListActive(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+users\s+WHERE\s+revoked_on\s+IS\s+NULL\s+ORDER\s+BY\s+created_on,\s*id$`

	rows := sqlmock.NewRows(columns).
		AddRow("u-1", "alice", "h", "Alice", int64(0), nil, true, createdOn, "", nil, nil, nil, nil).
		AddRow("u-2", "bob", "h", "Bob", int64(1), nil, false, changedOn, "alice", nil, nil, nil, nil)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(got) != 2 || got[0].Login != "alice" || got[1].Gender != models.GenderMale || !got[0].Admin {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestListActive_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,`).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestListActive_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("u-1")
	mock.ExpectQuery(`(?s)^SELECT\s+id,`).WillReturnRows(rows)

	_, err := repo.ListActive(context.Background())
	if err == nil || !regexp.MustCompile(`db error:`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListOlderThan_UsesCutoff(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*WHERE\s+revoked_on\s+IS\s+NULL\s+AND\s+birthday\s+IS\s+NOT\s+NULL\s+AND\s+birthday\s*<=\s*\$1`
	asOf := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	mock.ExpectQuery(q).
		WithArgs(time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(activeRow("alice"))

	got, err := repo.ListOlderThan(context.Background(), 18, asOf)
	if err != nil {
		t.Fatalf("ListOlderThan error: %v", err)
	}
	if len(got) != 1 || got[0].Login != "alice" {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestListOlderThan_LeapDayCutoff(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*birthday\s*<=\s*\$1`

	mock.ExpectQuery(q).
		WithArgs(time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(activeRow("alice"))

	if _, err := repo.ListOlderThan(context.Background(), 1, time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("ListOlderThan error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET.*login\s*=\s*COALESCE\(\$2,\s*login\).*WHERE\s+login\s*=\s*\$1\s+AND\s+revoked_on\s+IS\s+NULL\s+RETURNING\s+id,`

	name := "Alicia"
	gender := models.GenderUnspecified
	mock.ExpectQuery(q).
		WithArgs("alice", nil, nil, "Alicia", 2, nil, changedOn, "admin").
		WillReturnRows(activeRow("alice"))

	_, err := repo.Update(context.Background(), "alice", models.UserPatch{Name: &name, Gender: &gender}, "admin", changedOn)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_NoActiveRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET`).WillReturnError(sql.ErrNoRows)

	name := "x"
	_, err := repo.Update(context.Background(), "alice", models.UserPatch{Name: &name}, "admin", changedOn)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_LoginCollision(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_login_key"})

	login := "bob"
	_, err := repo.Update(context.Background(), "alice", models.UserPatch{Login: &login}, "alice", changedOn)
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestDelete_Soft(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+revoked_on\s*=\s*\$2,\s*revoked_by\s*=\s*\$3,.*WHERE\s+login\s*=\s*\$1\s+AND\s+revoked_on\s+IS\s+NULL`

	mock.ExpectQuery(q).
		WithArgs("alice", changedOn, "admin").
		WillReturnRows(revokedRow("alice"))

	got, err := repo.Delete(context.Background(), "alice", true, "admin", changedOn)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if got.IsActive() {
		t.Fatalf("expected revoked user, got %+v", got)
	}
}

func TestDelete_Hard(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+login\s*=\s*\$1\s+RETURNING\s+id,`

	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(revokedRow("alice"))

	if _, err := repo.Delete(context.Background(), "alice", false, "admin", changedOn); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_Missing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^DELETE\s+FROM\s+users`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), "ghost", false, "admin", changedOn)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+revoked_on\s*=\s*NULL,\s*revoked_by\s*=\s*NULL,.*WHERE\s+login\s*=\s*\$1\s+AND\s+revoked_on\s+IS\s+NOT\s+NULL`

	mock.ExpectQuery(q).
		WithArgs("alice", changedOn, "admin").
		WillReturnRows(activeRow("alice"))

	got, err := repo.Restore(context.Background(), "alice", "admin", changedOn)
	if err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if !got.IsActive() {
		t.Fatalf("expected active user, got %+v", got)
	}
}

func TestRestore_NotRevoked(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET\s+revoked_on\s*=\s*NULL`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Restore(context.Background(), "alice", "admin", changedOn)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

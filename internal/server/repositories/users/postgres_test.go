package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	createQ  = `(?s)^\s*INSERT\s+INTO\s+users\s*\(email,\s*password_hash,\s*role\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`
	byEmailQ = `(?s)^\s*SELECT\s+id,\s*email,\s*password_hash,\s*role,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	byIDQ    = `(?s)^\s*SELECT\s+id,\s*email,\s*password_hash,\s*role,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
)

var userCols = []string{"id", "email", "password_hash", "role", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(createQ).
		WithArgs("ops@cerevyn.io", []byte("hash"), "admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("42", now))

	u := &models.User{Email: "  OPS@cerevyn.io ", PasswordHash: []byte("hash"), Role: domain.RoleAdmin}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || got.Email != "ops@cerevyn.io" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(createQ).
		WithArgs("a@b.c", []byte("h"), "client").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{Email: "a@b.c", PasswordHash: []byte("h"), Role: domain.RoleClient})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(createQ).
		WithArgs("a@b.c", []byte("h"), "client").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@b.c", PasswordHash: []byte("h"), Role: domain.RoleClient})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byEmailQ).
		WithArgs("biofactor@client.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "biofactor@client.com", []byte("h"), "client", time.Now()))

	got, err := repo.GetByEmail(context.Background(), "BioFactor@client.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Role != domain.RoleClient {
		t.Fatalf("unexpected user: %+v", got)
	}

	mock.ExpectQuery(byEmailQ).WithArgs("ghost@x.y").WillReturnError(sql.ErrNoRows)
	if _, err := repo.GetByEmail(context.Background(), "ghost@x.y"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}

	mock.ExpectQuery(byEmailQ).WithArgs("a@b.c").WillReturnError(errors.New("db err"))
	if _, err := repo.GetByEmail(context.Background(), "a@b.c"); err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_UnknownRoleFallsBackToClient(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byIDQ).
		WithArgs("u-9").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-9", "x@y.z", []byte("h"), "superuser", time.Now()))

	got, err := repo.GetByID(context.Background(), "u-9")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Role != domain.RoleClient {
		t.Fatalf("want client role, got %q", got.Role)
	}
}

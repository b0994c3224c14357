package submissions

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var cols = []string{"id", "client_id", "client_name", "title", "description", "file_url", "status", "created_at"}

const selectPrefix = `(?s)^SELECT\s+id,\s*client_id,\s*client_name,\s*title,\s*description,\s*file_url,\s*status,\s*created_at\s+FROM\s+submissions`

func TestSelect_BuildsFilter(t *testing.T) {
	tests := []struct {
		name  string
		f     Filter
		where string
		args  []driver.Value
	}{
		{"unscoped", Filter{}, `\s+ORDER BY`, nil},
		{"owner", Filter{OwnerID: "u1"}, `\s+WHERE client_id = \$1\s+ORDER BY`, []driver.Value{"u1"}},
		{"tenant and status", Filter{Tenant: "biofactor", Status: domain.StatusPending},
			`\s+WHERE client_name = \$1 AND status = \$2\s+ORDER BY`, []driver.Value{"biofactor", "pending"}},
		{"all", Filter{OwnerID: "u1", Tenant: "biofactor", Status: domain.StatusOngoing},
			`\s+WHERE client_id = \$1 AND client_name = \$2 AND status = \$3\s+ORDER BY`, []driver.Value{"u1", "biofactor", "ongoing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			now := time.Now()
			e := mock.ExpectQuery(selectPrefix + tt.where + ` created_at DESC, id$`)
			if tt.args != nil {
				e = e.WithArgs(tt.args...)
			}
			e.WillReturnRows(sqlmock.NewRows(cols).
				AddRow("s2", "u1", "biofactor", "Newer", "", "https://x/2", "ongoing", now).
				AddRow("s1", "u1", "biofactor", "Older", "d", "https://x/1", "pending", now.Add(-time.Hour)))

			got, err := repo.Select(context.Background(), tt.f)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "s2", got[0].ID)
			assert.Equal(t, domain.StatusPending, got[1].Status)
			assert.Equal(t, "https://x/1", got[1].AttachmentRef)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSelect_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(selectPrefix).WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.Select(context.Background(), Filter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelect_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(selectPrefix).WillReturnError(errors.New("db down"))

	_, err := repo.Select(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestInsert_ForcesPending(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)^\s*INSERT\s+INTO\s+submissions\s*\(client_id,\s*client_name,\s*title,\s*description,\s*file_url,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+id,\s*created_at\s*$`).
		WithArgs("u1", "biofactor", "Q3 brief", "", "https://cdn/1_brief.pdf", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("s-new", now))

	got, err := repo.Insert(context.Background(), &domain.Submission{
		OwnerID: "u1", Tenant: "biofactor", Title: "Q3 brief",
		AttachmentRef: "https://cdn/1_brief.pdf", Status: domain.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, "s-new", got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.True(t, got.CreatedAt.Equal(now))
}

const updateQ = `(?s)^\s*UPDATE\s+submissions\s+SET\s+status\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+status\s*=\s*\$2\s+RETURNING`
const byIDQ = selectPrefix + `\s+WHERE\s+id\s*=\s*\$1$`

func TestUpdateStatus_Applied(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(updateQ).
		WithArgs("s1", "pending", "ongoing").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "u1", "biofactor", "T", "", "u", "ongoing", time.Now()))

	got, err := repo.UpdateStatus(context.Background(), "s1", domain.StatusPending, domain.StatusOngoing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOngoing, got.Status)
}

func TestUpdateStatus_Stale(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(updateQ).WithArgs("s1", "pending", "ongoing").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(byIDQ).WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "u1", "biofactor", "T", "", "u", "rejected", time.Now()))

	_, err := repo.UpdateStatus(context.Background(), "s1", domain.StatusPending, domain.StatusOngoing)
	assert.ErrorIs(t, err, common.ErrStaleStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(updateQ).WithArgs("nope", "pending", "ongoing").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(byIDQ).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "nope", domain.StatusPending, domain.StatusOngoing)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateStatus_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(updateQ).WithArgs("s1", "ongoing", "completed").WillReturnError(errors.New("conn reset"))

	_, err := repo.UpdateStatus(context.Background(), "s1", domain.StatusOngoing, domain.StatusCompleted)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrStaleStatus)
}

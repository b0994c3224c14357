package statushistory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	q := `(?s)^\s*INSERT\s+INTO\s+submission_status_history\s*\(submission_id,\s*from_status,\s*to_status,\s*changed_by\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`
	mock.ExpectExec(q).
		WithArgs("s1", "pending", "ongoing", "admin-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Append(context.Background(), domain.StatusChange{
		SubmissionID: "s1", From: domain.StatusPending, To: domain.StatusOngoing, ChangedBy: "admin-1",
	}))

	mock.ExpectExec(q).WillReturnError(errors.New("fk violation"))
	require.Error(t, repo.Append(context.Background(), domain.StatusChange{SubmissionID: "zz"}))
}

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)FROM\s+submission_status_history\s+WHERE\s+submission_id\s*=\s*\$1\s+ORDER\s+BY\s+changed_at,\s*id`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"submission_id", "from_status", "to_status", "changed_by", "changed_at"}).
			AddRow("s1", "pending", "ongoing", "a1", t0).
			AddRow("s1", "ongoing", "completed", "a2", t0.Add(time.Hour)))

	got, err := repo.List(context.Background(), "s1")
	require.NoError(t, err)

	want := []domain.StatusChange{
		{SubmissionID: "s1", From: domain.StatusPending, To: domain.StatusOngoing, ChangedBy: "a1", ChangedAt: t0},
		{SubmissionID: "s1", From: domain.StatusOngoing, To: domain.StatusCompleted, ChangedBy: "a2", ChangedAt: t0.Add(time.Hour)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	rows []domain.Submission
	err  error

	gotTenant string
	gotStatus domain.Status
	created   domain.Submission
	moved     [3]string
}

func (f *fakeBackend) ListSubmissions(ctx context.Context, tenant string, status domain.Status) ([]domain.Submission, error) {
	f.gotTenant, f.gotStatus = tenant, status
	return f.rows, f.err
}

func (f *fakeBackend) CreateSubmission(ctx context.Context, in domain.Submission) (*domain.Submission, error) {
	f.created = in
	in.ID = "new"
	return &in, f.err
}

func (f *fakeBackend) TransitionSubmission(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error) {
	f.moved = [3]string{id, string(from), string(to)}
	return &domain.Submission{ID: id, Status: to}, f.err
}

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func rows() []domain.Submission {
	return []domain.Submission{
		{ID: "a", OwnerID: "u1", Tenant: "biofactor", Status: domain.StatusPending, CreatedAt: t0},
		{ID: "b", OwnerID: "u2", Tenant: "ddyadhagiri", Status: domain.StatusOngoing, CreatedAt: t0.Add(time.Hour)},
		{ID: "c", OwnerID: "u1", Tenant: "biofactor", Status: domain.StatusCompleted, CreatedAt: t0.Add(2 * time.Hour)},
	}
}

func ids(rs []domain.Submission) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestSelect_ConfinesToScopeNewestFirst(t *testing.T) {
	b := &fakeBackend{rows: rows()}
	s := New(b, domain.Scope{OwnerID: "u1"})

	got, err := s.Select(context.Background(), Filter{})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"c", "a"}, ids(got)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_AppliesFilter(t *testing.T) {
	b := &fakeBackend{rows: rows()}
	s := New(b, domain.Scope{})

	got, err := s.Select(context.Background(), Filter{Tenant: "biofactor", Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))
	assert.Equal(t, "biofactor", b.gotTenant)
	assert.Equal(t, domain.StatusPending, b.gotStatus)
}

func TestSelect_TenantScopeOverridesFilter(t *testing.T) {
	b := &fakeBackend{rows: rows()}
	s := New(b, domain.Scope{Tenant: "biofactor"})

	got, err := s.Select(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, "biofactor", b.gotTenant)
	assert.Equal(t, []string{"c", "a"}, ids(got))
}

func TestSelect_EmptyAndError(t *testing.T) {
	s := New(&fakeBackend{}, domain.Scope{OwnerID: "u1"})
	got, err := s.Select(context.Background(), Filter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	boom := errors.New("boom")
	s = New(&fakeBackend{err: boom}, domain.Scope{})
	_, err = s.Select(context.Background(), Filter{})
	require.ErrorIs(t, err, boom)
}

func TestInsertAndUpdate_Delegate(t *testing.T) {
	b := &fakeBackend{}
	s := New(b, domain.Scope{OwnerID: "u1"})

	got, err := s.Insert(context.Background(), domain.Submission{Title: "Logo"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
	assert.Equal(t, "Logo", b.created.Title)

	_, err = s.Update(context.Background(), "a", domain.StatusPending, domain.StatusOngoing)
	require.NoError(t, err)
	assert.Equal(t, [3]string{"a", "pending", "ongoing"}, b.moved)
}

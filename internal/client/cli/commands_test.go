package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/dashboard"
	"github.com/dmitrijs2005/gophportal/internal/client/intake"
	"github.com/dmitrijs2005/gophportal/internal/client/models"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubReadFile(t *testing.T, data []byte, err error) *string {
	t.Helper()
	var got string
	orig := readFile
	readFile = func(name string) ([]byte, error) {
		got = name
		return data, err
	}
	t.Cleanup(func() { readFile = orig })
	return &got
}

func TestCommands_RequireSession(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	for name, run := range map[string]func() error{
		"overview": func() error { return h.app.Overview(ctx) },
		"list":     func() error { return h.app.List(ctx) },
		"new":      func() error { return h.app.New(ctx) },
		"tenants":  func() error { return h.app.Tenants(ctx) },
		"history":  func() error { return h.app.History(ctx, "s1") },
		"chart":    func() error { return h.app.Chart(ctx, "") },
		"copy":     func() error { return h.app.Copy(ctx, "s1") },
		"refresh":  func() error { return h.app.Refresh(ctx) },
		"whoami":   func() error { return h.app.WhoAmI(ctx) },
		"open":     func() error { return h.app.Open(ctx, "biofactor") },
	} {
		assert.ErrorIs(t, run(), errNotLoggedIn, name)
	}
}

func TestList_ClientSeesOwnRows(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)

	require.NoError(t, h.app.List(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Soil report")
	assert.Contains(t, out, "Invoice")
	assert.NotContains(t, out, "Audit")
	assert.NotContains(t, out, "ACTIONS")
}

func TestList_AdminShowsActions(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)

	require.NoError(t, h.app.List(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Audit")
	assert.Contains(t, out, "accept, reject")
}

func TestList_AdminHidesActionsWhenAllClosed(t *testing.T) {
	rows := []domain.Submission{
		{ID: "s2", OwnerID: "u1", Tenant: "biofactor", Title: "Invoice", Status: domain.StatusCompleted, CreatedAt: t0},
		{ID: "s4", OwnerID: "u2", Tenant: "dd_yadhagiri", Title: "Permit", Status: domain.StatusRejected, CreatedAt: t0.Add(time.Hour)},
	}
	h := newHarness(t, adminSess(), rows...)
	h.signIn(t)

	require.NoError(t, h.app.List(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Permit")
	assert.NotContains(t, out, "ACTIONS")
}

func TestTransition_TerminalHasNoNext(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)

	require.NoError(t, h.app.Transition(context.Background(), lifecycle.ActionReject, "s3"))
	out := h.out.String()
	assert.Contains(t, out, "s3 is now")
	assert.NotContains(t, out, "next:")
}

func TestOverview_AdminPerTenant(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)

	require.NoError(t, h.app.Overview(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "All tenants")
	assert.Contains(t, out, "dd_yadhagiri")
	assert.Contains(t, out, "live updates paused")
}

func TestNew_SubmitsPendingRecord(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)
	path := stubReadFile(t, []byte("%PDF"), nil)

	h.input("Lab results", "first line", "", "/tmp/results.pdf")
	require.NoError(t, h.app.New(context.Background()))

	assert.Equal(t, "/tmp/results.pdf", *path)
	require.Len(t, h.blobs.uploaded, 1)
	assert.Contains(t, h.blobs.uploaded[0], "_results.pdf")

	h.backend.mu.Lock()
	created := h.backend.rows[len(h.backend.rows)-1]
	h.backend.mu.Unlock()
	assert.Equal(t, "Lab results", created.Title)
	assert.Equal(t, "first line", created.Description)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "u1", created.OwnerID)
	assert.Equal(t, "biofactor", created.Tenant)
	assert.Contains(t, h.out.String(), "Submitted")
}

func TestNew_RestoresDraft(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)
	h.drafts.drafts = map[string]models.Draft{
		"u1": {OwnerID: "u1", Title: "Saved title", AttachmentPath: "/tmp/saved.pdf"},
	}
	path := stubReadFile(t, []byte("data"), nil)

	h.input("", "", "")
	require.NoError(t, h.app.New(context.Background()))

	assert.Equal(t, "/tmp/saved.pdf", *path)
	assert.Contains(t, h.out.String(), "Restored your unsent draft")
	assert.Empty(t, h.drafts.drafts, "draft dropped after a successful submit")
}

func TestNew_ValidationKeepsDraft(t *testing.T) {
	h := newHarness(t, clientSess())
	h.signIn(t)

	h.input("Only a title", "", "")
	err := h.app.New(context.Background())

	var ve *intake.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "attachment", ve.Field)
	assert.Equal(t, "Only a title", h.drafts.drafts["u1"].Title)
}

func TestNew_AdminCannotSubmit(t *testing.T) {
	h := newHarness(t, adminSess())
	h.signIn(t)
	require.ErrorIs(t, h.app.New(context.Background()), errClientOnly)
}

func TestNew_UnreadableAttachment(t *testing.T) {
	h := newHarness(t, clientSess())
	h.signIn(t)
	stubReadFile(t, nil, os.ErrNotExist)

	h.input("Title", "", "/missing.pdf")
	require.ErrorIs(t, h.app.New(context.Background()), os.ErrNotExist)
}

func TestTransition_AcceptThenIllegal(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)
	ctx := context.Background()

	require.NoError(t, h.app.Transition(ctx, lifecycle.ActionAccept, "s1"))
	row, ok := h.app.dash.Find("s1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusOngoing, row.Status)
	assert.Contains(t, h.out.String(), "(next: completed)")

	err := h.app.Transition(ctx, lifecycle.ActionAccept, "s2")
	require.ErrorIs(t, err, lifecycle.ErrIllegalTransition)
	assert.Equal(t, domain.Counts{Ongoing: 1, Completed: 1, Pending: 1}, h.app.dash.Snapshot().Counts)

	require.ErrorIs(t, h.app.Transition(ctx, lifecycle.ActionAccept, "zzz"), dashboard.ErrNotFound)
}

func TestTransition_ClientRejected(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)
	require.ErrorIs(t, h.app.Transition(context.Background(), lifecycle.ActionAccept, "s1"), errAdminOnly)
	require.ErrorIs(t, h.app.Open(context.Background(), "biofactor"), errAdminOnly)
	require.ErrorIs(t, h.app.CloseTenant(context.Background()), errAdminOnly)
}

func TestOpenAndCloseTenant(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)
	ctx := context.Background()

	require.NoError(t, h.app.Open(ctx, "dd_yadhagiri"))
	v := h.app.dash.Snapshot()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "s3", v.Rows[0].ID)
	assert.Contains(t, h.out.String(), "Audit")

	require.NoError(t, h.app.CloseTenant(ctx))
	assert.Len(t, h.app.dash.Snapshot().Rows, 3)
}

func TestTenants(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)
	h.api.tenants = []domain.Tenant{
		{Code: "biofactor", Name: "Biofactor", Members: []string{"biofactor@client.com"}},
		{Code: "cerevyn", Name: "Cerevyn Solutions"},
	}

	require.NoError(t, h.app.Tenants(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "Biofactor")
	assert.Contains(t, out, "Cerevyn Solutions")

	c := newHarness(t, clientSess())
	c.signIn(t)
	require.NoError(t, c.app.Tenants(context.Background()))
	assert.Contains(t, c.out.String(), "Biofactor")
}

func TestHistory(t *testing.T) {
	h := newHarness(t, adminSess(), sampleRows()...)
	h.signIn(t)

	require.NoError(t, h.app.History(context.Background(), "s1"))
	assert.Contains(t, h.out.String(), "no status changes yet")

	h.out.Reset()
	h.api.history = []domain.StatusChange{
		{SubmissionID: "s1", From: domain.StatusPending, To: domain.StatusOngoing, ChangedBy: "a1", ChangedAt: t0.Add(time.Minute)},
	}
	require.NoError(t, h.app.History(context.Background(), "s1"))
	assert.Contains(t, h.out.String(), "a1")
}

func TestChart_WritesHTML(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)

	require.NoError(t, h.app.Chart(context.Background(), ""))
	data, err := os.ReadFile(filepath.Join(h.app.config.ChartDir, "status.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Biofactor")
	assert.Contains(t, string(data), "Pending")

	require.NoError(t, h.app.Chart(context.Background(), "../escape.html"))
	_, err = os.Stat(filepath.Join(h.app.config.ChartDir, "escape.html"))
	require.NoError(t, err)
}

func TestCopy(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	require.NoError(t, h.app.Copy(context.Background(), "s1"))
	assert.Equal(t, "https://files.test/1_soil.pdf", copied)

	require.ErrorIs(t, h.app.Copy(context.Background(), "s2"), errNoAttachment)
	require.ErrorIs(t, h.app.Copy(context.Background(), "s3"), dashboard.ErrNotFound)

	writeClipboard = func(string) error { return errors.New("no display") }
	h.out.Reset()
	require.NoError(t, h.app.Copy(context.Background(), "s1"))
	assert.Contains(t, h.out.String(), "https://files.test/1_soil.pdf")
}

func TestRefresh_PicksUpNewRows(t *testing.T) {
	h := newHarness(t, clientSess(), sampleRows()...)
	h.signIn(t)

	h.backend.mu.Lock()
	h.backend.rows = append(h.backend.rows, domain.Submission{ID: "s9", OwnerID: "u1", Tenant: "biofactor", Status: domain.StatusPending, CreatedAt: t0.Add(48 * time.Hour)})
	h.backend.mu.Unlock()

	require.NoError(t, h.app.Refresh(context.Background()))
	assert.Len(t, h.app.dash.Snapshot().Rows, 3)
}

func TestWhoAmI(t *testing.T) {
	h := newHarness(t, clientSess())
	h.signIn(t)

	require.NoError(t, h.app.WhoAmI(context.Background()))
	out := h.out.String()
	assert.Contains(t, out, "biofactor@client.com")
	assert.Contains(t, out, "paused")
}

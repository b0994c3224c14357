package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/config"
	"github.com/dmitrijs2005/gophportal/internal/client/feed"
	"github.com/dmitrijs2005/gophportal/internal/client/models"
	"github.com/dmitrijs2005/gophportal/internal/client/session"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeAPI struct {
	loginErr    error
	gotEmail    string
	gotPassword string

	registered []string
	regRole    domain.Role
	regErr     error

	tenants []domain.Tenant
	history []domain.StatusChange
	pingErr error
	closed  bool
}

func (f *fakeAPI) Close() error                   { f.closed = true; return nil }
func (f *fakeAPI) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeAPI) Login(ctx context.Context, email, password string) error {
	f.gotEmail, f.gotPassword = email, password
	return f.loginErr
}
func (f *fakeAPI) Register(ctx context.Context, email, password string, role domain.Role) (string, error) {
	f.registered = append(f.registered, email)
	f.regRole = role
	return "new-user", f.regErr
}
func (f *fakeAPI) ListTenants(ctx context.Context) ([]domain.Tenant, error) { return f.tenants, nil }
func (f *fakeAPI) History(ctx context.Context, id string) ([]domain.StatusChange, error) {
	return f.history, nil
}

type fakeResolver struct {
	sess   *session.Session
	err    error
	ended  []*session.Session
	endErr error
}

func (f *fakeResolver) Establish(ctx context.Context) (*session.Session, error) {
	return f.sess, f.err
}

func (f *fakeResolver) End(ctx context.Context, s *session.Session) error {
	f.ended = append(f.ended, s)
	return f.endErr
}

type fakeMeta struct {
	data map[string][]byte
}

func (f *fakeMeta) Get(ctx context.Context, key string) ([]byte, error) { return f.data[key], nil }
func (f *fakeMeta) Set(ctx context.Context, key string, value []byte) error {
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = value
	return nil
}
func (f *fakeMeta) Delete(ctx context.Context, key string) error { delete(f.data, key); return nil }
func (f *fakeMeta) List(ctx context.Context) (map[string][]byte, error) {
	return f.data, nil
}
func (f *fakeMeta) Clear(ctx context.Context) error { f.data = nil; return nil }

// memBackend is an in-memory submission store.
type memBackend struct {
	mu   sync.Mutex
	rows []domain.Submission
	seq  int
}

func (m *memBackend) ListSubmissions(ctx context.Context, tenant string, status domain.Status) ([]domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Submission(nil), m.rows...), nil
}

func (m *memBackend) CreateSubmission(ctx context.Context, in domain.Submission) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	in.ID = fmt.Sprintf("new-%d", m.seq)
	in.CreatedAt = t0.Add(24 * time.Hour)
	m.rows = append(m.rows, in)
	return &in, nil
}

func (m *memBackend) TransitionSubmission(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			if m.rows[i].Status != from {
				return nil, common.ErrStaleStatus
			}
			m.rows[i].Status = to
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, common.ErrorNotFound
}

type offlineFeed struct{}

func (offlineFeed) Subscribe(ctx context.Context, scope domain.Scope, onChange func(domain.Change)) (*feed.Subscription, error) {
	return nil, &feed.SubscriptionFailure{Err: errors.New("offline")}
}

func (offlineFeed) Unsubscribe(*feed.Subscription) {}

type fakeBlobs struct {
	uploaded []string
}

func (f *fakeBlobs) Upload(ctx context.Context, name string, data []byte) (string, error) {
	f.uploaded = append(f.uploaded, name)
	return "client-files/" + name, nil
}

func (f *fakeBlobs) GetPublicURL(ctx context.Context, key string) (string, error) {
	return "https://files.test/" + key, nil
}

type fakeDrafts struct {
	drafts map[string]models.Draft
}

func (f *fakeDrafts) Save(ctx context.Context, d models.Draft) error {
	if f.drafts == nil {
		f.drafts = map[string]models.Draft{}
	}
	f.drafts[d.OwnerID] = d
	return nil
}

func (f *fakeDrafts) Get(ctx context.Context, ownerID string) (*models.Draft, error) {
	d, ok := f.drafts[ownerID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &d, nil
}

func (f *fakeDrafts) Delete(ctx context.Context, ownerID string) error {
	delete(f.drafts, ownerID)
	return nil
}

type harness struct {
	app      *App
	out      *bytes.Buffer
	api      *fakeAPI
	resolver *fakeResolver
	meta     *fakeMeta
	backend  *memBackend
	blobs    *fakeBlobs
	drafts   *fakeDrafts
}

func newHarness(t *testing.T, sess *session.Session, rows ...domain.Submission) *harness {
	t.Helper()
	h := &harness{
		out:      &bytes.Buffer{},
		api:      &fakeAPI{},
		resolver: &fakeResolver{sess: sess},
		meta:     &fakeMeta{},
		backend:  &memBackend{rows: rows},
		blobs:    &fakeBlobs{},
		drafts:   &fakeDrafts{},
	}
	if sess == nil {
		h.resolver.err = session.ErrNoIdentity
	}
	h.app = &App{
		config:   &config.Config{ChartDir: t.TempDir()},
		logger:   logging.Discard(),
		api:      h.api,
		resolver: h.resolver,
		meta:     h.meta,
		backend:  h.backend,
		feed:     offlineFeed{},
		blobs:    h.blobs,
		drafts:   h.drafts,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      h.out,
		theme:    NewTheme(domain.Theme{}),
	}
	t.Cleanup(func() {
		if h.app.dash != nil {
			h.app.dash.Close()
		}
	})
	return h
}

// signIn opens the harness session directly.
func (h *harness) signIn(t *testing.T) {
	t.Helper()
	if err := h.app.openSession(context.Background()); err != nil {
		t.Fatalf("openSession: %v", err)
	}
	h.out.Reset()
}

func (h *harness) input(lines ...string) {
	h.app.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func clientSess() *session.Session {
	return session.New(
		domain.Identity{UserID: "u1", Email: "biofactor@client.com", Role: domain.RoleClient},
		domain.Tenant{Code: "biofactor", Name: "Biofactor", Theme: domain.Theme{Primary: "#0E3B2E", Accent: "#1F9D55"}},
	)
}

func adminSess() *session.Session {
	return session.New(domain.Identity{UserID: "a1", Email: "ops@portal.test", Role: domain.RoleAdmin}, domain.NoTenant)
}

func sampleRows() []domain.Submission {
	return []domain.Submission{
		{ID: "s1", OwnerID: "u1", Tenant: "biofactor", Title: "Soil report", Status: domain.StatusPending, AttachmentRef: "https://files.test/1_soil.pdf", CreatedAt: t0},
		{ID: "s2", OwnerID: "u1", Tenant: "biofactor", Title: "Invoice", Status: domain.StatusCompleted, CreatedAt: t0.Add(time.Hour)},
		{ID: "s3", OwnerID: "u2", Tenant: "dd_yadhagiri", Title: "Audit", Status: domain.StatusPending, CreatedAt: t0.Add(2 * time.Hour)},
	}
}

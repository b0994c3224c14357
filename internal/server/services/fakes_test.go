package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/dbx"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/server/models"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/statushistory"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/submissions"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

func init() {
	bcryptCost = bcrypt.MinCost
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// --- users ---

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	err     error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) add(t *testing.T, id, email, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	f.byEmail[email] = &models.User{ID: id, Email: email, PasswordHash: hash, Role: role}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	email := strings.ToLower(u.Email)
	if _, ok := f.byEmail[email]; ok {
		return nil, users.ErrEmailTaken
	}
	cp := *u
	cp.Email = email
	cp.ID = "id-" + email
	f.byEmail[email] = &cp
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// --- refresh tokens ---

type fakeRefresh struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
}

func newFakeRefresh() *fakeRefresh {
	return &fakeRefresh{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefresh) Create(_ context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefresh) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeRefresh) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefresh) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

// --- submissions ---

type fakeSubmissions struct {
	rows       []domain.Submission
	lastFilter submissions.Filter
	err        error
	seq        int
}

func (f *fakeSubmissions) Select(_ context.Context, flt submissions.Filter) ([]domain.Submission, error) {
	f.lastFilter = flt
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Submission{}
	for _, r := range f.rows {
		if flt.OwnerID != "" && r.OwnerID != flt.OwnerID {
			continue
		}
		if flt.Tenant != "" && r.Tenant != flt.Tenant {
			continue
		}
		if flt.Status != "" && r.Status != flt.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSubmissions) GetByID(_ context.Context, id string) (*domain.Submission, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			cp := f.rows[i]
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSubmissions) Insert(_ context.Context, s *domain.Submission) (*domain.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	cp := *s
	cp.ID = "s" + string(rune('0'+f.seq))
	cp.Status = domain.StatusPending
	cp.CreatedAt = time.Now()
	f.rows = append(f.rows, cp)
	return &cp, nil
}

func (f *fakeSubmissions) UpdateStatus(_ context.Context, id string, from, to domain.Status) (*domain.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		if f.rows[i].Status != from {
			return nil, common.ErrStaleStatus
		}
		f.rows[i].Status = to
		cp := f.rows[i]
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

// --- history ---

type fakeHistory struct {
	changes   []domain.StatusChange
	appendErr error
}

func (f *fakeHistory) Append(_ context.Context, c domain.StatusChange) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.changes = append(f.changes, c)
	return nil
}

func (f *fakeHistory) List(_ context.Context, id string) ([]domain.StatusChange, error) {
	out := []domain.StatusChange{}
	for _, c := range f.changes {
		if c.SubmissionID == id {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- manager ---

type fakeRepoManager struct {
	u *fakeUsers
	r *fakeRefresh
	s *fakeSubmissions
	h *fakeHistory
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsers(), r: newFakeRefresh(), s: &fakeSubmissions{}, h: &fakeHistory{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Submissions(dbx.DBTX) submissions.Repository     { return m.s }
func (m *fakeRepoManager) StatusHistory(dbx.DBTX) statushistory.Repository { return m.h }

// --- blob + tenants ---

type fakeBlobs struct {
	presignErr error
	publicErr  error
	lastKey    string
}

func (f *fakeBlobs) PresignUpload(_ context.Context, key, _ string) (string, error) {
	f.lastKey = key
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://s3.local/put/" + key, nil
}

func (f *fakeBlobs) PublicURL(_ context.Context, key string) (string, error) {
	if f.publicErr != nil {
		return "", f.publicErr
	}
	return "https://s3.local/client-files/" + key, nil
}

type fakeTenants map[string]domain.Tenant

func (f fakeTenants) Lookup(email string) (domain.Tenant, bool) {
	t, ok := f[email]
	return t, ok
}

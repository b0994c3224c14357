package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/server/auth"
	"github.com/dmitrijs2005/gophportal/internal/server/config"
	"github.com/dmitrijs2005/gophportal/internal/server/models"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "k"

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

func TestRegister(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)
	ctx := context.Background()

	u, err := s.Register(ctx, "Ops@Portal.io", "longenough", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "ops@portal.io", u.Email)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.NotEqual(t, []byte("longenough"), u.PasswordHash)

	u, err = s.Register(ctx, "c@x.io", "longenough", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, u.Role, "role defaults to client")

	_, err = s.Register(ctx, "ops@portal.io", "longenough", domain.RoleClient)
	assert.Error(t, err)

	for name, tc := range map[string]struct {
		email, password string
		role            domain.Role
	}{
		"no at":       {"nobody", "longenough", domain.RoleClient},
		"short pass":  {"a@b.c", "short", domain.RoleClient},
		"bad role":    {"a@b.c", "longenough", "root"},
		"empty email": {" ", "longenough", domain.RoleClient},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Register(ctx, tc.email, tc.password, tc.role)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestRegister_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.u.err = errBoom
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "a@b.c", "longenough", domain.RoleClient)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "error creating user")
}

func TestSeed(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.u.add(t, "u-bio", "biofactor@client.com", "existing-pass", domain.RoleClient)
	s := newUserService(t, db, rm)

	issued, err := s.Seed(context.Background(), "admin@portal.io", "admin-pass", []string{"biofactor@client.com", "ddyadhagiri@client.com"})
	require.NoError(t, err)

	require.Len(t, issued, 1)
	assert.Len(t, issued["ddyadhagiri@client.com"], 16)

	admin, err := rm.u.GetByEmail(context.Background(), "admin@portal.io")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	created, err := s.EnsureUser(context.Background(), "admin@portal.io", "admin-pass", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLogin(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.u.add(t, "u1", "biofactor@client.com", "correct horse", domain.RoleClient)
	s := newUserService(t, db, rm)
	ctx := context.Background()

	pair, err := s.Login(ctx, "biofactor@client.com", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, pair.RefreshToken)

	id, err := auth.ParseToken(pair.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{UserID: "u1", Email: "biofactor@client.com", Role: domain.RoleClient}, id)
	assert.Contains(t, rm.r.tokens, pair.RefreshToken)

	_, err = s.Login(ctx, "biofactor@client.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "ghost@client.com", "whatever")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	rm.u.err = errBoom
	_, err = s.Login(ctx, "biofactor@client.com", "correct horse")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin_RefreshStoreFails(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.u.add(t, "u1", "a@b.c", "password1", domain.RoleClient)
	rm.r.createErr = errBoom
	s := newUserService(t, db, rm)

	_, err := s.Login(context.Background(), "a@b.c", "password1")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestRefreshToken_Rotates(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	rm.u.add(t, "u1", "ops@portal.io", "password1", domain.RoleAdmin)
	rm.r.tokens["old"] = &models.RefreshToken{UserID: "u1", Token: "old", Expires: time.Now().Add(10 * time.Minute)}
	s := newUserService(t, db, rm)

	pair, err := s.RefreshToken(context.Background(), "old")
	require.NoError(t, err)
	assert.NotContains(t, rm.r.tokens, "old")
	assert.Contains(t, rm.r.tokens, pair.RefreshToken)

	id, err := auth.ParseToken(pair.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, id.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Failures(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		rm := newFakeRepoManager()
		rm.r.tokens["r"] = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-time.Minute)}
		_, err := newUserService(t, db, rm).RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
	})

	t.Run("unknown", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		_, err := newUserService(t, db, newFakeRepoManager()).RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("find error", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		rm := newFakeRepoManager()
		rm.r.findErr = errBoom
		_, err := newUserService(t, db, rm).RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "error searching refresh token")
	})

	t.Run("delete error rolls back", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		rm := newFakeRepoManager()
		rm.r.tokens["r"] = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(time.Minute)}
		rm.r.delErr = errBoom

		_, err := newUserService(t, db, rm).RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, errBoom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user gone", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		rm := newFakeRepoManager()
		rm.r.tokens["r"] = &models.RefreshToken{UserID: "deleted", Expires: time.Now().Add(time.Minute)}

		_, err := newUserService(t, db, rm).RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})
}

func TestSignOutAndWhoAmI(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.u.add(t, "u1", "a@b.c", "password1", domain.RoleClient)
	s := newUserService(t, db, rm)
	ctx := context.Background()

	pair, err := s.Login(ctx, "a@b.c", "password1")
	require.NoError(t, err)

	require.NoError(t, s.SignOut(ctx, pair.RefreshToken))
	assert.NotContains(t, rm.r.tokens, pair.RefreshToken)
	require.NoError(t, s.SignOut(ctx, ""))

	id, err := s.WhoAmI(ctx, domain.Identity{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", id.Email)

	_, err = s.WhoAmI(ctx, domain.Identity{UserID: "nope"})
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	rm.r.delErr = errBoom
	assert.ErrorIs(t, s.SignOut(ctx, "x"), errBoom)
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errNotLoggedIn  = errors.New("not signed in")
	errAlreadyIn    = errors.New("already signed in, logout first")
	errAdminOnly    = errors.New("admin only")
	errClientOnly   = errors.New("only client accounts can submit")
	errNoAttachment = errors.New("submission has no attachment")
)

// Login prompts for credentials, authenticates and opens the dashboard for
// the resulting identity.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return errAlreadyIn
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		a.logger.Info(ctx, "Login unsuccessful", "email", email, "err", err)
		return err
	}
	if err := a.meta.Set(ctx, metadata.KeyEmail, []byte(email)); err != nil {
		a.logger.Warn(ctx, "saving email failed", "err", err)
	}

	if err := a.openSession(ctx); err != nil {
		return err
	}
	if code := a.sess.Tenant.Code; code != "" {
		if err := a.meta.Set(ctx, metadata.KeyTenant, []byte(code)); err != nil {
			a.logger.Warn(ctx, "saving tenant failed", "err", err)
		}
	}
	a.greet()
	return nil
}

// Logout tears down the dashboard, signs out on the server and wipes the
// locally stored session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	s := a.sess
	a.closeSession()

	if err := a.resolver.End(ctx, s); err != nil {
		return err
	}
	a.println(a.theme.success("Signed out"))
	return nil
}

// Register creates an account. Only admins may do this.
func (a *App) Register(ctx context.Context) error {
	if !a.isAdmin() {
		return errAdminOnly
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	raw, err := getSimpleText(a.reader, "Role (client/admin) [client]", a.out)
	if err != nil {
		return err
	}
	role := domain.RoleClient
	if raw = strings.ToLower(strings.TrimSpace(raw)); raw != "" {
		role = domain.Role(raw)
		if !role.Valid() {
			return fmt.Errorf("unknown role %q: %w", raw, common.ErrorValidation)
		}
	}

	id, err := a.api.Register(ctx, email, string(password), role)
	if err != nil {
		return err
	}

	a.println(a.theme.success(fmt.Sprintf("Registered %s as %s (%s)", email, role, id)))
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	id := a.sess.Identity
	tenant := "none"
	if !a.sess.Tenant.IsZero() {
		tenant = fmt.Sprintf("%s (%s)", a.sess.Tenant.DisplayName(), a.sess.Tenant.Code)
	}
	live := "live"
	if !a.dash.Snapshot().Live {
		live = "paused"
	}

	a.println(a.theme.table(
		[]string{"FIELD", "VALUE"},
		[][]string{
			{"email", id.Email},
			{"user", id.UserID},
			{"role", string(id.Role)},
			{"tenant", tenant},
			{"session", a.sess.ID},
			{"updates", live},
		},
	))
	return nil
}

// Package session resolves who is signed in and which tenant they belong
// to, and tears that state down again on sign-out.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/google/uuid"
)

// ErrNoIdentity is returned by Establish when nobody is signed in.
var ErrNoIdentity = errors.New("no signed-in identity")

// Auth is the identity side of the portal API.
type Auth interface {
	WhoAmI(ctx context.Context) (domain.Identity, error)
	ResolveTenant(ctx context.Context) (domain.Tenant, bool, error)
	SignOut(ctx context.Context) error
}

// Wiper drops locally held session state.
type Wiper interface {
	Clear(ctx context.Context) error
}

// Session is one signed-in dashboard session.
type Session struct {
	ID       string
	Identity domain.Identity
	Tenant   domain.Tenant

	ended atomic.Bool
}

// New builds a session for an already known identity and tenant.
func New(id domain.Identity, tenant domain.Tenant) *Session {
	return &Session{ID: uuid.NewString(), Identity: id, Tenant: tenant}
}

// Scope is what the session may read: everything for admins, the owner's
// own rows for clients.
func (s *Session) Scope() domain.Scope {
	if s.Identity.IsAdmin() {
		return domain.Scope{}
	}
	return domain.Scope{OwnerID: s.Identity.UserID}
}

// Ended reports whether the session has been signed out.
func (s *Session) Ended() bool {
	return s.ended.Load()
}

type Resolver struct {
	auth   Auth
	wipers []Wiper
	logger logging.Logger
}

// NewResolver builds a resolver. wipers are cleared on End.
func NewResolver(auth Auth, logger logging.Logger, wipers ...Wiper) *Resolver {
	return &Resolver{auth: auth, wipers: wipers, logger: logger}
}

// Establish reads the current identity and resolves its tenant. A missing
// or failed tenant lookup is not an error: the session falls back to
// domain.NoTenant and the condition is logged.
func (r *Resolver) Establish(ctx context.Context) (*Session, error) {
	id, err := r.auth.WhoAmI(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}
	if id.UserID == "" {
		return nil, ErrNoIdentity
	}

	tenant, found, err := r.auth.ResolveTenant(ctx)
	switch {
	case err != nil:
		r.logger.Warn(ctx, "tenant lookup failed", "email", id.Email, "err", err)
		tenant = domain.NoTenant
	case !found:
		r.logger.Warn(ctx, "no tenant mapping for identity", "email", id.Email)
		tenant = domain.NoTenant
	}

	s := New(id, tenant)
	r.logger.Info(ctx, "session established", "session", s.ID, "email", id.Email, "role", id.Role, "tenant", tenant.Code)
	return s, nil
}

// End signs out and discards all locally held state. Local state is wiped
// even when the server call fails; the first error is returned.
func (r *Resolver) End(ctx context.Context, s *Session) error {
	if s != nil {
		s.ended.Store(true)
	}

	var errs []error
	if err := r.auth.SignOut(ctx); err != nil {
		r.logger.Warn(ctx, "sign out failed", "err", err)
		errs = append(errs, err)
	}
	for _, w := range r.wipers {
		if err := w.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

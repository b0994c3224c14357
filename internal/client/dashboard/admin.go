package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophportal/internal/client/session"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
	"github.com/dmitrijs2005/gophportal/internal/logging"
)

var ErrNotAdmin = errors.New("transitions require an admin session")

// Updater persists status transitions.
type Updater interface {
	Update(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error)
}

// TransitionFailure is returned when the store refused a legal transition.
// Local state is left as it was.
type TransitionFailure struct {
	ID       string
	From, To domain.Status
	Err      error
}

func (e *TransitionFailure) Error() string {
	return fmt.Sprintf("transition %s %s -> %s failed: %v", e.ID, e.From, e.To, e.Err)
}

func (e *TransitionFailure) Unwrap() error {
	return e.Err
}

// Admin is the unscoped dashboard with tenant drill-down and transitions.
type Admin struct {
	*Dashboard
	updater Updater
}

func NewAdmin(sess *session.Session, source Source, updater Updater, f Feed, logger logging.Logger) *Admin {
	return &Admin{Dashboard: New(sess, source, f, logger), updater: updater}
}

// SelectTenant narrows the visible rows to one tenant; empty shows all.
func (a *Admin) SelectTenant(code string) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.selected = code
	a.publishLocked()
}

// Actions lists the transitions currently offered for submission id.
func (a *Admin) Actions(id string) []lifecycle.Action {
	row, ok := a.Find(id)
	if !ok {
		return nil
	}
	return lifecycle.Actions(row.Status)
}

// Apply moves submission id to target. The move is checked against the
// lifecycle table before the store is touched; local state is patched only
// once the store has accepted it.
func (a *Admin) Apply(ctx context.Context, id string, target domain.Status) (*domain.Submission, error) {
	if !a.sess.Identity.IsAdmin() {
		return nil, ErrNotAdmin
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil, ErrClosed
	}
	i := a.indexLocked(id)
	if i < 0 {
		a.mu.Unlock()
		return nil, ErrNotFound
	}
	from := a.rows[i].Status
	a.mu.Unlock()

	if err := lifecycle.Validate(from, target); err != nil {
		return nil, err
	}

	updated, err := a.updater.Update(ctx, id, from, target)
	if err != nil {
		a.logger.Warn(ctx, "transition failed", "id", id, "from", from, "to", target, "err", err)
		return nil, &TransitionFailure{ID: id, From: from, To: target, Err: err}
	}
	a.logger.Info(ctx, "transition applied", "id", id, "from", from, "to", target)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return updated, nil
	}
	// A re-fetch may already carry this or a later status.
	if i := a.indexLocked(id); i >= 0 && a.rows[i].Status == from {
		rows := make([]domain.Submission, len(a.rows))
		copy(rows, a.rows)
		rows[i].Status = target
		a.rows = rows
		a.updated = a.now()
	}
	a.publishLocked()
	return updated, nil
}

// ApplyAction is Apply addressed by action name.
func (a *Admin) ApplyAction(ctx context.Context, id string, action lifecycle.Action) (*domain.Submission, error) {
	target, err := lifecycle.ActionTarget(action)
	if err != nil {
		return nil, err
	}
	return a.Apply(ctx, id, target)
}

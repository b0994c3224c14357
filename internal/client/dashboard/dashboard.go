// Package dashboard keeps a session's view of the submission set current.
//
// Every change notification triggers a full re-fetch of the session's
// scoped rows which then replaces local state wholesale; derived counts are
// recomputed from scratch each time. Fetch results that arrive after Close,
// or after a newer fetch has already been applied, are dropped.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/aggregate"
	"github.com/dmitrijs2005/gophportal/internal/client/feed"
	"github.com/dmitrijs2005/gophportal/internal/client/session"
	"github.com/dmitrijs2005/gophportal/internal/client/store"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
)

var (
	ErrClosed   = errors.New("dashboard closed")
	ErrNotFound = fmt.Errorf("submission %w", common.ErrorNotFound)
)

// Source reads the session's scoped rows.
type Source interface {
	Select(ctx context.Context, f store.Filter) ([]domain.Submission, error)
}

// Feed hands out change subscriptions.
type Feed interface {
	Subscribe(ctx context.Context, scope domain.Scope, onChange func(domain.Change)) (*feed.Subscription, error)
	Unsubscribe(sub *feed.Subscription)
}

// View is an immutable snapshot for rendering.
type View struct {
	// Rows are the visible submissions, newest first: the client's own
	// rows, or for an admin the selected tenant's rows (all when none is
	// selected).
	Rows []domain.Submission
	// Counts tallies Rows.
	Counts domain.Counts
	// Overview summarises every row in scope.
	Overview aggregate.Overview
	// Tenants lists the tenant labels present in scope.
	Tenants []string
	// Tenant is the selected drill-down, empty for none.
	Tenant string
	// Live is false while no change subscription is active.
	Live      bool
	UpdatedAt time.Time
}

type Dashboard struct {
	sess   *session.Session
	source Source
	feed   Feed
	logger logging.Logger
	now    func() time.Time

	mu       sync.Mutex
	rows     []domain.Submission
	selected string
	updated  time.Time
	closed   bool
	issued   uint64
	applied  uint64
	sub      *feed.Subscription
	ctx      context.Context
	cancel   context.CancelFunc
	onChange func(View)

	// version numbers published views under mu; delivered is the newest
	// version handed to onChange, guarded by notifyMu.
	version   uint64
	notifyMu  sync.Mutex
	delivered uint64
}

func New(sess *session.Session, source Source, f Feed, logger logging.Logger) *Dashboard {
	return &Dashboard{
		sess:   sess,
		source: source,
		feed:   f,
		logger: logger.With("module", "dashboard", "session", sess.ID),
		now:    time.Now,
		ctx:    context.Background(),
	}
}

// OnChange registers fn to receive a fresh View after every reconciliation.
// fn may call Snapshot but must not call Refresh, Apply or SelectTenant.
func (d *Dashboard) OnChange(fn func(View)) {
	d.mu.Lock()
	d.onChange = fn
	d.mu.Unlock()
}

// Session returns the session the dashboard was built for.
func (d *Dashboard) Session() *session.Session {
	return d.sess
}

// Start subscribes to changes and performs the initial fetch. A failed
// subscription is logged and the dashboard carries on without live
// updates; the returned error is only the initial fetch's.
func (d *Dashboard) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.ctx, d.cancel = context.WithCancel(ctx)
	runCtx := d.ctx
	d.mu.Unlock()

	sub, err := d.feed.Subscribe(runCtx, d.sess.Scope(), d.handleChange)
	if err != nil {
		d.logger.Warn(ctx, "live updates unavailable", "err", err)
	} else {
		d.mu.Lock()
		closed := d.closed
		if !closed {
			d.sub = sub
		}
		d.mu.Unlock()
		if closed {
			d.feed.Unsubscribe(sub)
			return ErrClosed
		}
	}

	return d.Refresh(runCtx)
}

func (d *Dashboard) handleChange(c domain.Change) {
	d.mu.Lock()
	ctx := d.ctx
	d.mu.Unlock()

	d.logger.Debug(ctx, "change received", "op", c.Op, "id", c.ID)
	_ = d.Refresh(ctx)
}

// Refresh re-fetches the scoped rows and replaces local state with them.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.issued++
	gen := d.issued
	d.mu.Unlock()

	rows, err := d.source.Select(ctx, store.Filter{})
	if err != nil {
		d.logger.Warn(ctx, "fetch failed", "err", err)
		return err
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Debug(ctx, "fetch result dropped after close", "generation", gen)
		return nil
	}
	if gen < d.applied {
		d.mu.Unlock()
		d.logger.Debug(ctx, "stale fetch result dropped", "generation", gen, "applied", d.applied)
		return nil
	}
	d.applied = gen
	d.rows = rows
	d.updated = d.now()
	d.publishLocked()
	return nil
}

// publishLocked builds the view and hands it to the OnChange hook. It
// must be called with mu held and releases it before the hook runs. A view
// overtaken by a newer one while waiting for the hook is dropped.
func (d *Dashboard) publishLocked() {
	d.version++
	ver := d.version
	v := d.viewLocked()
	fn := d.onChange
	d.mu.Unlock()

	d.notifyMu.Lock()
	defer d.notifyMu.Unlock()
	if ver <= d.delivered {
		return
	}
	d.delivered = ver
	if fn != nil {
		fn(v)
	}
}

func (d *Dashboard) viewLocked() View {
	all := make([]domain.Submission, len(d.rows))
	copy(all, d.rows)

	visible := all
	if d.selected != "" {
		visible = aggregate.ForTenant(all, d.selected)
	}

	return View{
		Rows:      visible,
		Counts:    aggregate.Tally(visible),
		Overview:  aggregate.Summarize(all),
		Tenants:   aggregate.Tenants(all),
		Tenant:    d.selected,
		Live:      d.sub != nil,
		UpdatedAt: d.updated,
	}
}

// Snapshot returns the current view.
func (d *Dashboard) Snapshot() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewLocked()
}

// Find returns the row with id from the last reconciliation.
func (d *Dashboard) Find(id string) (domain.Submission, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexLocked(id)
	if i < 0 {
		return domain.Submission{}, false
	}
	return d.rows[i], true
}

func (d *Dashboard) indexLocked(id string) int {
	for i, r := range d.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Close tears down the subscription. Results of fetches still in flight are
// discarded. Close is idempotent.
func (d *Dashboard) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	sub, cancel := d.sub, d.cancel
	d.sub = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.feed.Unsubscribe(sub)
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/client"
	"github.com/dmitrijs2005/gophportal/internal/client/config"
	"github.com/dmitrijs2005/gophportal/internal/client/dashboard"
	"github.com/dmitrijs2005/gophportal/internal/client/feed"
	"github.com/dmitrijs2005/gophportal/internal/client/intake"
	"github.com/dmitrijs2005/gophportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophportal/internal/client/session"
	"github.com/dmitrijs2005/gophportal/internal/client/store"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// portalAPI is the part of the API client the REPL calls directly.
type portalAPI interface {
	Close() error
	Ping(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string, role domain.Role) (string, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	History(ctx context.Context, id string) ([]domain.StatusChange, error)
}

type resolver interface {
	Establish(ctx context.Context) (*session.Session, error)
	End(ctx context.Context, s *session.Session) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	api      portalAPI
	resolver resolver
	meta     metadata.Repository
	backend  store.Backend
	feed     dashboard.Feed
	blobs    intake.Blobs
	drafts   intake.Drafts
	closers  []io.Closer
	reader   *bufio.Reader
	out      io.Writer

	sess   *session.Session
	dash   *dashboard.Dashboard
	admin  *dashboard.Admin
	intake *intake.Pipeline
	theme  Theme

	mu         sync.Mutex
	mode       Mode
	lastCounts *domain.Counts
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewText(os.Stderr, logging.ParseLevel(c.LogLevel))

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}
	repos := client.NewRepositories(db)

	pc, err := client.NewPortalClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if access, refresh, err := metadata.Tokens(ctx, repos.Metadata); err != nil {
		logger.Warn(ctx, "stored session unreadable", "err", err)
	} else {
		pc.SetTokens(access, refresh)
	}
	pc.OnTokens(func(access, refresh string) {
		if err := metadata.SaveTokens(context.Background(), repos.Metadata, access, refresh); err != nil {
			logger.Warn(context.Background(), "saving tokens failed", "err", err)
		}
	})

	listener := feed.NewListener(pc, logger)

	return &App{
		config:   c,
		logger:   logger,
		api:      pc,
		resolver: session.NewResolver(pc, logger, repos.Metadata, repos.Drafts),
		meta:     repos.Metadata,
		backend:  pc,
		feed:     listener,
		blobs:    store.NewBlobs(pc, nil),
		drafts:   repos.Drafts,
		closers:  []io.Closer{closerFunc(listener.Close), pc, db},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		theme:    NewTheme(domain.Theme{}),
	}, nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// Run restores a stored session if there is one, starts the connectivity
// watcher and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.shutdown()

	a.println(a.theme.Title.Render("Submission portal") + " (type 'help' for commands)")

	if err := a.openSession(ctx); err == nil {
		a.greet()
	} else {
		a.logger.Debug(ctx, "no stored session", "err", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) shutdown() {
	if a.dash != nil {
		a.dash.Close()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// openSession resolves the signed-in identity and starts the dashboard
// matching its role.
func (a *App) openSession(ctx context.Context) error {
	s, err := a.resolver.Establish(ctx)
	if err != nil {
		return err
	}

	st := store.New(a.backend, s.Scope())
	if s.Identity.IsAdmin() {
		a.admin = dashboard.NewAdmin(s, st, st, a.feed, a.logger)
		a.dash = a.admin.Dashboard
		a.intake = nil
		a.theme = NewTheme(domain.Theme{})
	} else {
		a.admin = nil
		a.dash = dashboard.New(s, st, a.feed, a.logger)
		a.intake = intake.New(a.blobs, st, a.drafts, a.logger)
		a.theme = NewTheme(s.Tenant.Theme)
	}
	a.sess = s

	a.mu.Lock()
	a.lastCounts = nil
	a.mu.Unlock()

	a.dash.OnChange(a.onUpdate)
	if err := a.dash.Start(ctx); err != nil {
		a.println(a.theme.warning("could not load submissions: " + describe(err)))
	}
	return nil
}

func (a *App) closeSession() {
	if a.dash != nil {
		a.dash.Close()
	}
	a.sess, a.dash, a.admin, a.intake = nil, nil, nil, nil
	a.theme = NewTheme(domain.Theme{})
}

// onUpdate prints a notice when a live refresh changed the counts.
func (a *App) onUpdate(v dashboard.View) {
	a.mu.Lock()
	prev := a.lastCounts
	a.lastCounts = &v.Counts
	a.mu.Unlock()

	if prev == nil || *prev == v.Counts {
		return
	}
	a.println(a.theme.Muted.Render("↻ updated  ") + a.theme.countsLine(v.Counts))
}

func (a *App) greet() {
	who := a.sess.Identity.Email
	if a.sess.Identity.IsAdmin() {
		a.println(a.theme.success(fmt.Sprintf("Signed in as %s (admin)", who)))
		return
	}
	if a.sess.Tenant.IsZero() {
		a.println(a.theme.success("Signed in as " + who))
		return
	}
	a.println(a.theme.success(fmt.Sprintf("Signed in as %s · %s", who, a.sess.Tenant.DisplayName())))
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) isLoggedIn() bool {
	return a.sess != nil
}

func (a *App) isAdmin() bool {
	return a.sess != nil && a.sess.Identity.IsAdmin()
}

func (a *App) getStatus() string {
	s := ""
	if a.sess != nil {
		s = a.sess.Identity.Email + " "
		if code := a.sess.Tenant.Code; code != "" {
			s += code + " "
		}
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf(" (%s)", s)
	}
	return s
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

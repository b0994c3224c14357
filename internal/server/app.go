// Package server wires the portal backend together: storage, the tenant
// directory, the change feed and the gRPC and HTTP front ends.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/dmitrijs2005/gophportal/internal/server/blob"
	"github.com/dmitrijs2005/gophportal/internal/server/changefeed"
	"github.com/dmitrijs2005/gophportal/internal/server/config"
	"github.com/dmitrijs2005/gophportal/internal/server/httpapi"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophportal/internal/server/services"
	"github.com/dmitrijs2005/gophportal/internal/server/tenants"

	gs "github.com/dmitrijs2005/gophportal/internal/server/grpc"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	out               io.Writer
	db                *sql.DB
	directory         *tenants.Directory
	hub               *changefeed.Hub
	userService       *services.UserService
	submissionService *services.SubmissionService
}

// NewApp opens the database, applies migrations, loads the tenant directory
// and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, logging.ParseLevel(c.LogLevel))

	db, err := repomanager.OpenDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	directory, err := tenants.Load(c.TenantsFile)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tenants error: %w", err)
	}

	store, err := blob.NewS3Store(ctx, blob.Options{
		User:          c.S3RootUser,
		Password:      c.S3RootPassword,
		Bucket:        c.S3Bucket,
		Region:        c.S3Region,
		Endpoint:      c.S3BaseEndpoint,
		PublicBaseURL: c.S3PublicBaseURL,
		Expiry:        c.PresignExpiry,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store error: %w", err)
	}

	return &App{
		config:            c,
		logger:            logger,
		out:               os.Stdout,
		db:                db,
		directory:         directory,
		hub:               changefeed.NewHub(0),
		userService:       services.NewUserService(db, rm, c),
		submissionService: services.NewSubmissionService(db, rm, store, directory, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// seed creates the configured admin and accounts for tenant members, and
// prints the passwords issued to new members.
func (app *App) seed(ctx context.Context) error {
	if app.config.SeedAdminEmail == "" {
		return nil
	}
	issued, err := app.userService.Seed(ctx, app.config.SeedAdminEmail, app.config.SeedAdminPassword, app.directory.Members())
	if err != nil {
		return err
	}
	emails := make([]string, 0, len(issued))
	for e := range issued {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	for _, e := range emails {
		fmt.Fprintf(app.out, "seeded %s password %s\n", e, issued[e])
	}
	app.logger.Info(ctx, "seed complete", "admin", app.config.SeedAdminEmail, "new_members", len(issued))
	return nil
}

// Run starts every component and blocks until a signal arrives or one of
// them fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	if err := app.seed(ctx); err != nil {
		return fmt.Errorf("seed error: %w", err)
	}

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.submissionService, app.directory, app.hub, app.config.SecretKey)
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Logger:    app.logger,
		Overview:  app.submissionService,
		Tenants:   app.directory,
		JWTSecret: []byte(app.config.SecretKey),
		RateLimit: app.config.HTTPRateLimit,
	})
	httpServer := httpapi.NewServer(app.config.EndpointAddrHTTP, router, app.logger)
	listener := changefeed.NewPGListener(app.config.DatabaseDSN, common.SubmissionsChannel, app.hub, app.logger)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				app.logger.Error(ctx, "component failed", "component", name, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", name, err)
				}
				mu.Unlock()
				cancelFunc()
			}
		}()
	}

	run("changefeed", listener.Run)
	run("grpc", grpcServer.Run)
	run("http", httpServer.Run)
	run("tenants", func(ctx context.Context) error {
		return app.directory.Watch(ctx, app.logger)
	})

	<-ctx.Done()
	app.hub.Close()
	wg.Wait()

	app.logger.Info(context.Background(), "Stopped")
	return firstErr
}

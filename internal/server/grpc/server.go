// Package grpc exposes the portal services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophportal/internal/aggregate"
	"github.com/dmitrijs2005/gophportal/internal/api"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	pb "github.com/dmitrijs2005/gophportal/internal/proto"
	"github.com/dmitrijs2005/gophportal/internal/server/changefeed"
	"github.com/dmitrijs2005/gophportal/internal/server/models"
	"github.com/dmitrijs2005/gophportal/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Users is the part of services.UserService the transport needs.
type Users interface {
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	SignOut(ctx context.Context, refreshToken string) error
	Register(ctx context.Context, email, password string, role domain.Role) (*models.User, error)
	WhoAmI(ctx context.Context, id domain.Identity) (domain.Identity, error)
}

// Submissions is the part of services.SubmissionService the transport needs.
type Submissions interface {
	ResolveTenant(id domain.Identity) (domain.Tenant, bool)
	List(ctx context.Context, id domain.Identity, tenant string, status domain.Status) ([]domain.Submission, error)
	Create(ctx context.Context, id domain.Identity, in services.NewSubmission) (*domain.Submission, error)
	Transition(ctx context.Context, id domain.Identity, subID string, from, to domain.Status) (*domain.Submission, error)
	History(ctx context.Context, id domain.Identity, subID string) ([]domain.StatusChange, error)
	RequestUpload(ctx context.Context, id domain.Identity, name, contentType string) (string, string, error)
	PublicURL(ctx context.Context, id domain.Identity, key string) (string, error)
	Overview(ctx context.Context) (aggregate.Overview, error)
}

// TenantLister lists the tenant directory.
type TenantLister interface {
	List() []domain.Tenant
}

// Feed hands out scoped change subscriptions.
type Feed interface {
	Subscribe(scope domain.Scope) (*changefeed.Subscription, error)
	Unsubscribe(sub *changefeed.Subscription)
	Len() int
}

type GRPCServer struct {
	pb.UnimplementedPortalServiceServer
	address     string
	users       Users
	submissions Submissions
	tenants     TenantLister
	feed        Feed
	logger      logging.Logger
	jwtSecret   []byte

	// stopping is closed before GracefulStop so open Watch streams return.
	stopping chan struct{}
}

func NewGRPCServer(a string, l logging.Logger, us Users, ss Submissions, tl TenantLister, feed Feed, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		users:       us,
		submissions: ss,
		tenants:     tl,
		feed:        feed,
		jwtSecret:   []byte(secretKey),
		stopping:    make(chan struct{}),
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterPortalServiceServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv, hs
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is canceled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		close(s.stopping)
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}

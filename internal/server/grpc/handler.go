package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophportal/internal/api"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	pb "github.com/dmitrijs2005/gophportal/internal/proto"
	"github.com/dmitrijs2005/gophportal/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func identity(ctx context.Context) (domain.Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return domain.Identity{}, status.Error(codes.Unauthenticated, "no identity")
	}
	return id, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn(ctx, "login failed", "email", req.Email, "error", err)
		return nil, toStatus(err)
	}
	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.Empty, error) {
	if err := s.users.SignOut(ctx, req.RefreshToken); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin() {
		return nil, status.Error(codes.PermissionDenied, "only admins register accounts")
	}

	u, err := s.users.Register(ctx, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "Registered", "email", u.Email, "role", u.Role, "by", id.UserID)
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.Empty) (*pb.WhoAmIResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.users.WhoAmI(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.WhoAmIResponse{Identity: api.IdentityToProto(current)}, nil
}

func (s *GRPCServer) ResolveTenant(ctx context.Context, _ *pb.Empty) (*pb.ResolveTenantResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	t, found := s.submissions.ResolveTenant(id)
	if !found {
		return &pb.ResolveTenantResponse{}, nil
	}
	t.Members = nil
	return &pb.ResolveTenantResponse{Tenant: api.TenantToProto(t), Found: true}, nil
}

// ListTenants returns the whole directory to admins and the caller's own
// tenant to clients.
func (s *GRPCServer) ListTenants(ctx context.Context, _ *pb.Empty) (*pb.ListTenantsResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if id.IsAdmin() {
		return &pb.ListTenantsResponse{Tenants: api.TenantsToProto(s.tenants.List())}, nil
	}
	out := []domain.Tenant{}
	if t, ok := s.submissions.ResolveTenant(id); ok {
		t.Members = nil
		out = append(out, t)
	}
	return &pb.ListTenantsResponse{Tenants: api.TenantsToProto(out)}, nil
}

func (s *GRPCServer) ListSubmissions(ctx context.Context, req *pb.ListSubmissionsRequest) (*pb.ListSubmissionsResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.submissions.List(ctx, id, req.Tenant, domain.Status(req.Status))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListSubmissionsResponse{Submissions: api.SubmissionsToProto(rows)}, nil
}

func (s *GRPCServer) CreateSubmission(ctx context.Context, req *pb.CreateSubmissionRequest) (*pb.SubmissionResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := s.submissions.Create(ctx, id, services.NewSubmission{
		Tenant:        req.ClientName,
		Title:         req.Title,
		Description:   req.Description,
		AttachmentRef: req.FileUrl,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmissionResponse{Submission: api.SubmissionToProto(*sub)}, nil
}

func (s *GRPCServer) TransitionSubmission(ctx context.Context, req *pb.TransitionRequest) (*pb.SubmissionResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := s.submissions.Transition(ctx, id, req.Id, domain.Status(req.From), domain.Status(req.To))
	if err != nil {
		s.logger.Warn(ctx, "transition refused", "id", req.Id, "from", req.From, "to", req.To, "error", err)
		return nil, toStatus(err)
	}
	return &pb.SubmissionResponse{Submission: api.SubmissionToProto(*sub)}, nil
}

func (s *GRPCServer) History(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	changes, err := s.submissions.History(ctx, id, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.HistoryResponse{Changes: api.StatusChangesToProto(changes)}, nil
}

func (s *GRPCServer) RequestUpload(ctx context.Context, req *pb.RequestUploadRequest) (*pb.RequestUploadResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := s.submissions.RequestUpload(ctx, id, req.Name, req.ContentType)
	if err != nil {
		s.logger.Error(ctx, "presign upload failed", "name", req.Name, "error", err)
		return nil, toStatus(err)
	}
	return &pb.RequestUploadResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) PublicUrl(ctx context.Context, req *pb.PublicUrlRequest) (*pb.PublicUrlResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.submissions.PublicURL(ctx, id, req.Key)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PublicUrlResponse{Url: url}, nil
}

// Watch streams submission changes in the caller's scope until the caller
// goes away or the server stops. Headers are sent once the subscription is
// live so clients can tell a failed subscribe from a quiet feed.
func (s *GRPCServer) Watch(_ *pb.WatchRequest, stream grpc.ServerStreamingServer[pb.Change]) error {
	ctx := stream.Context()
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	scope := services.ScopeFor(id)
	sub, err := s.feed.Subscribe(scope)
	if err != nil {
		return status.Error(codes.Unavailable, err.Error())
	}
	defer s.feed.Unsubscribe(sub)

	if err := stream.SendHeader(metadata.Pairs(api.WatchReadyHeader, "1")); err != nil {
		return err
	}
	s.logger.Debug(ctx, "watch started", "user", id.UserID, "role", id.Role, "subscribers", s.feed.Len())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopping:
			return status.Error(codes.Unavailable, "server shutting down")
		case c, ok := <-sub.C:
			if !ok {
				return status.Error(codes.Unavailable, "change feed closed")
			}
			if err := stream.Send(api.ChangeToProto(c)); err != nil {
				return err
			}
		}
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophportal/internal/api"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
	pb "github.com/dmitrijs2005/gophportal/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PortalServiceClient
	health      healthpb.HealthClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onTokens     func(access, refresh string)

	// refreshMu serialises refreshes; a rotated refresh token is single use.
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	used, _ := s.Tokens()
	err := invoker(withAccessToken(ctx, used), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	access, rerr := s.refresh(ctx, used)
	if rerr != nil {
		return err
	}

	// TOKENS REFRESHED, creating context with new Access Token
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	access, _ := s.Tokens()
	return streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
}

// refresh trades the refresh token for a new pair. used is the access token
// the failed call carried; if another call already rotated it the current
// pair is returned without a second round trip.
func (s *GRPCClient) refresh(ctx context.Context, used string) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.Tokens()
	if access != used && access != "" {
		return access, nil
	}
	if refresh == "" {
		return "", ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return "", err
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return resp.AccessToken, nil
}

func NewPortalClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.streamTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPortalServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

// OnTokens registers fn to be called whenever the token pair changes,
// including when it is cleared.
func (s *GRPCClient) OnTokens(fn func(access, refresh string)) {
	s.mu.Lock()
	s.onTokens = fn
	s.mu.Unlock()
}

// SetTokens installs a token pair, e.g. one restored from local storage.
func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	fn := s.onTokens
	s.mu.Unlock()

	if fn != nil {
		fn(access, refresh)
	}
}

func (s *GRPCClient) Tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// Ping asks the standard health service whether the portal is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// SignOut revokes the refresh token on the server and forgets both tokens
// locally. The local pair is dropped even when the server call fails.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	_, refresh := s.Tokens()
	defer s.SetTokens("", "")

	if refresh == "" {
		return nil
	}
	if _, err := s.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password string, role domain.Role) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password, Role: string(role)})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (domain.Identity, error) {
	resp, err := s.client.WhoAmI(ctx, &pb.Empty{})
	if err != nil {
		return domain.Identity{}, s.mapError(err)
	}
	return api.IdentityFromProto(resp.GetIdentity()), nil
}

func (s *GRPCClient) ResolveTenant(ctx context.Context) (domain.Tenant, bool, error) {
	resp, err := s.client.ResolveTenant(ctx, &pb.Empty{})
	if err != nil {
		return domain.NoTenant, false, s.mapError(err)
	}
	if !resp.GetFound() {
		return domain.NoTenant, false, nil
	}
	return api.TenantFromProto(resp.GetTenant()), true, nil
}

func (s *GRPCClient) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	resp, err := s.client.ListTenants(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.TenantsFromProto(resp.GetTenants()), nil
}

func (s *GRPCClient) ListSubmissions(ctx context.Context, tenant string, st domain.Status) ([]domain.Submission, error) {
	resp, err := s.client.ListSubmissions(ctx, &pb.ListSubmissionsRequest{Tenant: tenant, Status: string(st)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.SubmissionsFromProto(resp.GetSubmissions()), nil
}

func (s *GRPCClient) CreateSubmission(ctx context.Context, in domain.Submission) (*domain.Submission, error) {
	req := &pb.CreateSubmissionRequest{
		ClientName:  in.Tenant,
		Title:       in.Title,
		Description: in.Description,
		FileUrl:     in.AttachmentRef,
	}
	resp, err := s.client.CreateSubmission(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	sub := api.SubmissionFromProto(resp.GetSubmission())
	return &sub, nil
}

func (s *GRPCClient) TransitionSubmission(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error) {
	resp, err := s.client.TransitionSubmission(ctx, &pb.TransitionRequest{Id: id, From: string(from), To: string(to)})
	if err != nil {
		return nil, s.mapError(err)
	}
	sub := api.SubmissionFromProto(resp.GetSubmission())
	return &sub, nil
}

func (s *GRPCClient) History(ctx context.Context, id string) ([]domain.StatusChange, error) {
	resp, err := s.client.History(ctx, &pb.HistoryRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.StatusChangesFromProto(resp.GetChanges()), nil
}

func (s *GRPCClient) RequestUpload(ctx context.Context, name, contentType string) (string, string, error) {
	resp, err := s.client.RequestUpload(ctx, &pb.RequestUploadRequest{Name: name, ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetKey(), resp.GetUrl(), nil
}

func (s *GRPCClient) PublicURL(ctx context.Context, key string) (string, error) {
	resp, err := s.client.PublicUrl(ctx, &pb.PublicUrlRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

// Watch opens the change stream and waits until the server confirms the
// subscription. An expired access token is refreshed once.
func (s *GRPCClient) Watch(ctx context.Context) (ChangeStream, error) {
	stream, err := s.openWatch(ctx)
	if err != nil && isTokenExpired(err) {
		used, _ := s.Tokens()
		if _, rerr := s.refresh(ctx, used); rerr == nil {
			stream, err = s.openWatch(ctx)
		}
	}
	if err != nil {
		return nil, s.mapError(err)
	}
	return stream, nil
}

func (s *GRPCClient) openWatch(ctx context.Context) (ChangeStream, error) {
	stream, err := s.client.Watch(ctx, &pb.WatchRequest{})
	if err != nil {
		return nil, err
	}

	md, err := stream.Header()
	if err != nil {
		return nil, err
	}
	if len(md.Get(api.WatchReadyHeader)) > 0 {
		return changeStream{stream}, nil
	}

	// No ready header: the stream ended before subscribing and Recv
	// carries the reason.
	_, err = stream.Recv()
	if err == nil || errors.Is(err, io.EOF) {
		err = status.Error(codes.Unavailable, "watch ended before subscribing")
	}
	return nil, err
}

// changeStream converts wire changes into domain values.
type changeStream struct {
	grpc.ServerStreamingClient[pb.Change]
}

func (c changeStream) Recv() (*domain.Change, error) {
	m, err := c.ServerStreamingClient.Recv()
	if err != nil {
		return nil, err
	}
	ch := api.ChangeFromProto(m)
	return &ch, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrorForbidden, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", lifecycle.ErrIllegalTransition, st.Message())
	case codes.Aborted:
		return fmt.Errorf("%w: %s", common.ErrStaleStatus, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

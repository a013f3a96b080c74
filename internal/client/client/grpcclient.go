package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/usermanager/internal/common"
	pb "github.com/dmitrijs2005/usermanager/internal/proto"
	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	users       pb.UserServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.users = pb.NewUserServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// Ping asks the standard health service whether the user API is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := healthpb.NewHealthClient(s.conn).Check(ctx,
		&healthpb.HealthCheckRequest{Service: pb.UserService_ServiceDesc.ServiceName},
	)
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, login string, password []byte) (*api.AuthenticatedUser, error) {
	resp, err := s.users.Login(ctx, &pb.LoginRequest{Login: login, Password: string(password)})
	if err != nil {
		return nil, mapError(err)
	}
	s.setToken(resp.GetAccessToken())
	u := authenticatedFromMessage(resp.GetUser())
	return &u, nil
}

// Logout forgets the access token; later calls are anonymous.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) CreateUser(ctx context.Context, req *api.CreateUserRequest) (*api.UserSummary, error) {
	resp, err := s.users.CreateUser(ctx, createUserMessage(req))
	return summaryResult(resp, err)
}

func (s *GRPCClient) GetUser(ctx context.Context, login string) (*api.UserDetail, error) {
	resp, err := s.users.GetUser(ctx, &pb.GetUserRequest{Login: login})
	if err != nil {
		return nil, mapError(err)
	}
	d := detailFromMessage(resp)
	return &d, nil
}

func (s *GRPCClient) ListActiveUsers(ctx context.Context) ([]api.UserSummary, error) {
	resp, err := s.users.ListActiveUsers(ctx, &pb.ListActiveUsersRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return summariesFromMessage(resp), nil
}

func (s *GRPCClient) ListUsersOlderThan(ctx context.Context, age int) ([]api.UserSummary, error) {
	resp, err := s.users.ListUsersOlderThan(ctx, &pb.ListUsersOlderThanRequest{Age: int32(age)})
	if err != nil {
		return nil, mapError(err)
	}
	return summariesFromMessage(resp), nil
}

func (s *GRPCClient) UpdatePassword(ctx context.Context, login string, password []byte) error {
	_, err := s.users.UpdatePassword(ctx, &pb.UpdatePasswordRequest{Login: login, Password: string(password)})
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, login string, soft bool) (*api.UserSummary, error) {
	resp, err := s.users.DeleteUser(ctx, &pb.DeleteUserRequest{Login: login, Soft: &soft})
	return summaryResult(resp, err)
}

func (s *GRPCClient) RestoreUser(ctx context.Context, login string) (*api.UserSummary, error) {
	resp, err := s.users.RestoreUser(ctx, &pb.RestoreUserRequest{Login: login})
	return summaryResult(resp, err)
}

func summaryResult(resp *pb.UserSummary, err error) (*api.UserSummary, error) {
	if err != nil {
		return nil, mapError(err)
	}
	u := summaryFromMessage(resp)
	return &u, nil
}

// mapError converts a gRPC status into one of the package sentinels while
// keeping the server message.
func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		sentinel = ErrUnavailable
	case codes.Unauthenticated:
		sentinel = ErrUnauthorized
	case codes.PermissionDenied:
		sentinel = ErrForbidden
	case codes.NotFound:
		sentinel = ErrNotFound
	case codes.AlreadyExists:
		sentinel = ErrAlreadyExists
	case codes.InvalidArgument:
		sentinel = ErrInvalidInput
	default:
		return err
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}

// Package grpc serves the user service over gRPC using the messages
// generated in internal/proto.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/logging"
	pb "github.com/dmitrijs2005/usermanager/internal/proto"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/dmitrijs2005/usermanager/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the part of services.UserService the gRPC layer calls.
type UserService interface {
	Authenticate(ctx context.Context, login, password string) (*services.AuthResult, error)
	CreateUser(ctx context.Context, in services.CreateUserInput, requester string) (*models.User, error)
	UpdateName(ctx context.Context, login, name, requester string) (*models.User, error)
	UpdateGender(ctx context.Context, login string, gender models.Gender, requester string) (*models.User, error)
	UpdateBirthday(ctx context.Context, login string, birthday time.Time, requester string) (*models.User, error)
	UpdatePassword(ctx context.Context, login, password, requester string) (*models.User, error)
	UpdateLogin(ctx context.Context, login, newLogin, requester string) (*models.User, error)
	UpdateProfile(ctx context.Context, login string, in services.ProfileInput, requester string) (*models.User, error)
	GetUserByLogin(ctx context.Context, login, requester string) (*models.User, error)
	GetUserByCredentials(ctx context.Context, login, password, requester string) (*models.User, error)
	ListActiveUsers(ctx context.Context, requester string) ([]*models.User, error)
	ListUsersOlderThan(ctx context.Context, age int, requester string) ([]*models.User, error)
	DeleteUser(ctx context.Context, login string, soft bool, requester string) (*models.User, error)
	RestoreUser(ctx context.Context, login, requester string) (*models.User, error)
}

var _ pb.UserServiceServer = (*Server)(nil)

type Server struct {
	pb.UnimplementedUserServiceServer

	address   string
	users     UserService
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server
}

func NewGRPCServer(a string, l logging.Logger, us UserService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
}

// newServer creates the gRPC server with UserService and the standard
// health service registered.
func (s *Server) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterUserServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.UserService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

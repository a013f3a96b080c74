package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	pb "github.com/dmitrijs2005/usermanager/internal/proto"
	"github.com/dmitrijs2005/usermanager/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requesterKey ctxKey = "requester"

// anonymousMethods may be called without a token. A token that is present
// is still verified.
var anonymousMethods = map[string]bool{
	pb.UserService_Login_FullMethodName:      true,
	pb.UserService_CreateUser_FullMethodName: true,
}

func (s *Server) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	// health checks and other registered services are public
	if !strings.HasPrefix(info.FullMethod, "/"+pb.UserService_ServiceDesc.ServiceName+"/") {
		return handler(ctx, req)
	}

	ctx = logging.WithFields(ctx, "method", info.FullMethod)

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}

	if accessToken == "" {
		if anonymousMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	login, err := auth.GetLoginFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = logging.WithFields(ctx, "requester", login)
	return handler(context.WithValue(ctx, requesterKey, login), req)
}

// requester returns the login put into ctx by the interceptor, or "".
func requester(ctx context.Context) string {
	login, _ := ctx.Value(requesterKey).(string)
	return login
}

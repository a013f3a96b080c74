package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrLoginAlreadyExists):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrUserNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrAccessDenied), errors.Is(err, common.ErrUserRevoked):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrInvalidAge), errors.Is(err, common.ErrorValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return codes.Unauthenticated
	default:
		return codes.Internal
	}
}

func (s *Server) toStatus(ctx context.Context, err error) error {
	code := codeFor(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "rpc failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

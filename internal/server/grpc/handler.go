package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usermanager/internal/common"
	pb "github.com/dmitrijs2005/usermanager/internal/proto"
	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
)

func (s *Server) Login(ctx context.Context, in *pb.LoginRequest) (*pb.TokenResponse, error) {
	req := loginRequest(in)
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.users.Authenticate(ctx, req.Login, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Logged in", "login", req.Login)
	return &pb.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		User:        authenticatedMessage(api.NewAuthenticatedUser(res.User)),
	}, nil
}

func (s *Server) CreateUser(ctx context.Context, in *pb.CreateUserRequest) (*pb.UserSummary, error) {
	req := createUserRequest(in)
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	input, err := req.Input()
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	u, err := s.users.CreateUser(ctx, input, requester(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "login", u.Login)
	return s.summary(ctx, u, nil)
}

func (s *Server) GetUser(ctx context.Context, in *pb.GetUserRequest) (*pb.UserDetail, error) {
	req := &api.GetUserRequest{Login: in.GetLogin()}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	u, err := s.users.GetUserByLogin(ctx, req.Login, requester(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return detailMessage(api.NewUserDetail(u)), nil
}

func (s *Server) GetUserByCredentials(ctx context.Context, in *pb.LoginRequest) (*pb.AuthenticatedUser, error) {
	req := loginRequest(in)
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	u, err := s.users.GetUserByCredentials(ctx, req.Login, req.Password, requester(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return authenticatedMessage(api.NewAuthenticatedUser(u)), nil
}

func (s *Server) ListActiveUsers(ctx context.Context, _ *pb.ListActiveUsersRequest) (*pb.UserList, error) {
	list, err := s.users.ListActiveUsers(ctx, requester(ctx))
	return s.list(ctx, list, err)
}

func (s *Server) ListUsersOlderThan(ctx context.Context, in *pb.ListUsersOlderThanRequest) (*pb.UserList, error) {
	list, err := s.users.ListUsersOlderThan(ctx, int(in.GetAge()), requester(ctx))
	return s.list(ctx, list, err)
}

func (s *Server) UpdateName(ctx context.Context, in *pb.UpdateNameRequest) (*pb.UserSummary, error) {
	req := &api.UpdateNameRequest{Login: in.GetLogin(), Name: in.GetName()}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	u, err := s.users.UpdateName(ctx, req.Login, req.Name, requester(ctx))
	return s.summary(ctx, u, err)
}

func (s *Server) UpdateGender(ctx context.Context, in *pb.UpdateGenderRequest) (*pb.UserSummary, error) {
	gender := int(in.GetGender())
	req := &api.UpdateGenderRequest{Login: in.GetLogin(), Gender: &gender}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	u, err := s.users.UpdateGender(ctx, req.Login, models.Gender(gender), requester(ctx))
	return s.summary(ctx, u, err)
}

func (s *Server) UpdateBirthday(ctx context.Context, in *pb.UpdateBirthdayRequest) (*pb.UserSummary, error) {
	req := &api.UpdateBirthdayRequest{Login: in.GetLogin(), Birthday: in.GetBirthday()}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	birthday, err := api.ParseBirthday(req.Birthday)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	u, err := s.users.UpdateBirthday(ctx, req.Login, birthday, requester(ctx))
	return s.summary(ctx, u, err)
}

func (s *Server) UpdatePassword(ctx context.Context, in *pb.UpdatePasswordRequest) (*pb.UpdatePasswordResponse, error) {
	req := &api.UpdatePasswordRequest{Login: in.GetLogin(), Password: in.GetPassword()}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if _, err := s.users.UpdatePassword(ctx, req.Login, req.Password, requester(ctx)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdatePasswordResponse{}, nil
}

func (s *Server) UpdateLogin(ctx context.Context, in *pb.UpdateLoginRequest) (*pb.UserSummary, error) {
	req := &api.UpdateLoginRequest{Login: in.GetLogin(), NewLogin: in.GetNewLogin()}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	u, err := s.users.UpdateLogin(ctx, req.Login, req.NewLogin, requester(ctx))
	return s.summary(ctx, u, err)
}

func (s *Server) UpdateProfile(ctx context.Context, in *pb.UpdateProfileRequest) (*pb.UserSummary, error) {
	req := updateProfileRequest(in)
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	input, err := req.Input()
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	u, err := s.users.UpdateProfile(ctx, req.Login, input, requester(ctx))
	return s.summary(ctx, u, err)
}

func (s *Server) DeleteUser(ctx context.Context, in *pb.DeleteUserRequest) (*pb.UserSummary, error) {
	req := deleteUserRequest(in)
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	u, err := s.users.DeleteUser(ctx, req.Login, req.IsSoft(), requester(ctx))
	if err == nil {
		s.logger.Info(ctx, "Deleted", "login", req.Login, "soft", req.IsSoft())
	}
	return s.summary(ctx, u, err)
}

func (s *Server) RestoreUser(ctx context.Context, in *pb.RestoreUserRequest) (*pb.UserSummary, error) {
	req := &api.RestoreUserRequest{Login: in.GetLogin()}
	if err := api.Validate(req); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	u, err := s.users.RestoreUser(ctx, req.Login, requester(ctx))
	return s.summary(ctx, u, err)
}

func (s *Server) summary(ctx context.Context, u *models.User, err error) (*pb.UserSummary, error) {
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if u == nil {
		return nil, s.toStatus(ctx, fmt.Errorf("%w: empty result", common.ErrorInternal))
	}
	return summaryMessage(api.NewUserSummary(u)), nil
}

func (s *Server) list(ctx context.Context, users []*models.User, err error) (*pb.UserList, error) {
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return listMessage(api.NewUserList(users)), nil
}

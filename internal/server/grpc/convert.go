package grpc

import (
	pb "github.com/dmitrijs2005/usermanager/internal/proto"
	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Incoming messages are turned into api requests so the HTTP and gRPC
// transports run the same validation.

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func loginRequest(in *pb.LoginRequest) *api.LoginRequest {
	return &api.LoginRequest{Login: in.GetLogin(), Password: in.GetPassword()}
}

func createUserRequest(in *pb.CreateUserRequest) *api.CreateUserRequest {
	gender := int(in.GetGender())
	return &api.CreateUserRequest{
		Login:    in.GetLogin(),
		Password: in.GetPassword(),
		Name:     in.GetName(),
		Gender:   &gender,
		Birthday: in.Birthday,
		Admin:    in.GetAdmin(),
	}
}

func updateProfileRequest(in *pb.UpdateProfileRequest) *api.UpdateProfileRequest {
	return &api.UpdateProfileRequest{
		Login:    in.GetLogin(),
		Name:     in.Name,
		Gender:   optionalInt(in.Gender),
		Birthday: in.Birthday,
	}
}

func deleteUserRequest(in *pb.DeleteUserRequest) *api.DeleteUserRequest {
	return &api.DeleteUserRequest{Login: in.GetLogin(), Soft: in.Soft}
}

func summaryMessage(u api.UserSummary) *pb.UserSummary {
	return &pb.UserSummary{
		Login:     u.Login,
		Name:      u.Name,
		Gender:    int32(u.Gender),
		Birthday:  u.Birthday,
		IsAdmin:   u.IsAdmin,
		CreatedOn: timestamppb.New(u.CreatedOn),
	}
}

func detailMessage(u api.UserDetail) *pb.UserDetail {
	return &pb.UserDetail{
		Name:     u.Name,
		Gender:   int32(u.Gender),
		Birthday: u.Birthday,
		IsActive: u.IsActive,
	}
}

func authenticatedMessage(u api.AuthenticatedUser) *pb.AuthenticatedUser {
	return &pb.AuthenticatedUser{
		Login:    u.Login,
		Name:     u.Name,
		Gender:   int32(u.Gender),
		Birthday: u.Birthday,
		IsAdmin:  u.IsAdmin,
	}
}

func listMessage(l api.UserList) *pb.UserList {
	out := &pb.UserList{Users: make([]*pb.UserSummary, 0, len(l.Users))}
	for _, u := range l.Users {
		out.Users = append(out.Users, summaryMessage(u))
	}
	return out
}

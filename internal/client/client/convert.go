package client

import (
	pb "github.com/dmitrijs2005/usermanager/internal/proto"
	"github.com/dmitrijs2005/usermanager/internal/server/api"
)

func createUserMessage(r *api.CreateUserRequest) *pb.CreateUserRequest {
	m := &pb.CreateUserRequest{
		Login:    r.Login,
		Password: r.Password,
		Name:     r.Name,
		Birthday: r.Birthday,
		Admin:    r.Admin,
	}
	if r.Gender != nil {
		m.Gender = int32(*r.Gender)
	}
	return m
}

func summaryFromMessage(m *pb.UserSummary) api.UserSummary {
	if m == nil {
		return api.UserSummary{}
	}
	u := api.UserSummary{
		Login:    m.GetLogin(),
		Name:     m.GetName(),
		Gender:   int(m.GetGender()),
		Birthday: m.Birthday,
		IsAdmin:  m.GetIsAdmin(),
	}
	if ts := m.GetCreatedOn(); ts != nil {
		u.CreatedOn = ts.AsTime()
	}
	return u
}

func summariesFromMessage(m *pb.UserList) []api.UserSummary {
	out := make([]api.UserSummary, 0, len(m.GetUsers()))
	for _, u := range m.GetUsers() {
		out = append(out, summaryFromMessage(u))
	}
	return out
}

func detailFromMessage(m *pb.UserDetail) api.UserDetail {
	if m == nil {
		return api.UserDetail{}
	}
	return api.UserDetail{
		Name:     m.GetName(),
		Gender:   int(m.GetGender()),
		Birthday: m.Birthday,
		IsActive: m.GetIsActive(),
	}
}

func authenticatedFromMessage(m *pb.AuthenticatedUser) api.AuthenticatedUser {
	if m == nil {
		return api.AuthenticatedUser{}
	}
	return api.AuthenticatedUser{
		Login:    m.GetLogin(),
		Name:     m.GetName(),
		Gender:   int(m.GetGender()),
		Birthday: m.Birthday,
		IsAdmin:  m.GetIsAdmin(),
	}
}

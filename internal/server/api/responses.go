package api

import (
	"time"

	"github.com/dmitrijs2005/usermanager/internal/server/models"
)

// UserSummary is the listing and confirmation view of a user.
type UserSummary struct {
	Login     string    `json:"login"`
	Name      string    `json:"name"`
	Gender    int       `json:"gender"`
	Birthday  *string   `json:"birthday,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedOn time.Time `json:"created_on"`
}

// UserDetail is the administrator's lookup view.
type UserDetail struct {
	Name     string  `json:"name"`
	Gender   int     `json:"gender"`
	Birthday *string `json:"birthday,omitempty"`
	IsActive bool    `json:"is_active"`
}

// AuthenticatedUser is what a user sees about themselves.
type AuthenticatedUser struct {
	Login    string  `json:"login"`
	Name     string  `json:"name"`
	Gender   int     `json:"gender"`
	Birthday *string `json:"birthday,omitempty"`
	IsAdmin  bool    `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        AuthenticatedUser `json:"user"`
}

type UserList struct {
	Users []UserSummary `json:"users"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		Login:     u.Login,
		Name:      u.Name,
		Gender:    int(u.Gender),
		Birthday:  formatDate(u.Birthday),
		IsAdmin:   u.Admin,
		CreatedOn: u.CreatedOn,
	}
}

func NewUserDetail(u *models.User) UserDetail {
	return UserDetail{
		Name:     u.Name,
		Gender:   int(u.Gender),
		Birthday: formatDate(u.Birthday),
		IsActive: u.IsActive(),
	}
}

func NewAuthenticatedUser(u *models.User) AuthenticatedUser {
	return AuthenticatedUser{
		Login:    u.Login,
		Name:     u.Name,
		Gender:   int(u.Gender),
		Birthday: formatDate(u.Birthday),
		IsAdmin:  u.Admin,
	}
}

func NewUserList(users []*models.User) UserList {
	list := UserList{Users: make([]UserSummary, 0, len(users))}
	for _, u := range users {
		list.Users = append(list.Users, NewUserSummary(u))
	}
	return list
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

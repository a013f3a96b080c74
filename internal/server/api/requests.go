// Package api holds the request and response shapes shared by the HTTP and
// gRPC transports, and the validation applied to every request.
package api

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/dmitrijs2005/usermanager/internal/server/services"
)

// DateLayout is the wire format of birthdays.
const DateLayout = time.DateOnly

type LoginRequest struct {
	Login    string `json:"login" binding:"required,alphanum,max=50"`
	Password string `json:"password" binding:"required,alphanum,min=6,max=100"`
}

type CreateUserRequest struct {
	Login    string  `json:"login" binding:"required,alphanum,max=50"`
	Password string  `json:"password" binding:"required,alphanum,min=6,max=100"`
	Name     string  `json:"name" binding:"required,personname,max=100"`
	Gender   *int    `json:"gender" binding:"required,min=0,max=2"`
	Birthday *string `json:"birthday,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Admin    bool    `json:"admin"`
}

// Input converts a validated request into service input.
func (r *CreateUserRequest) Input() (services.CreateUserInput, error) {
	birthday, err := parseOptionalBirthday(r.Birthday)
	if err != nil {
		return services.CreateUserInput{}, err
	}

	in := services.CreateUserInput{
		Login:    r.Login,
		Password: r.Password,
		Name:     r.Name,
		Birthday: birthday,
		Admin:    r.Admin,
	}
	if r.Gender != nil {
		in.Gender = models.Gender(*r.Gender)
	}
	return in, nil
}

// Requests that target an existing user carry its login. Over HTTP the
// login comes from the path and overrides the body.

type UpdateNameRequest struct {
	Login string `json:"login" binding:"required,max=50"`
	Name  string `json:"name" binding:"required,personname,max=100"`
}

type UpdateGenderRequest struct {
	Login  string `json:"login" binding:"required,max=50"`
	Gender *int   `json:"gender" binding:"required,min=0,max=2"`
}

type UpdateBirthdayRequest struct {
	Login    string `json:"login" binding:"required,max=50"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02"`
}

type UpdatePasswordRequest struct {
	Login    string `json:"login" binding:"required,max=50"`
	Password string `json:"password" binding:"required,alphanum,min=6,max=100"`
}

type UpdateLoginRequest struct {
	Login    string `json:"login" binding:"required,max=50"`
	NewLogin string `json:"new_login" binding:"required,alphanum,max=50"`
}

type UpdateProfileRequest struct {
	Login    string  `json:"login" binding:"required,max=50"`
	Name     *string `json:"name,omitempty" binding:"omitempty,personname,max=100"`
	Gender   *int    `json:"gender,omitempty" binding:"omitempty,min=0,max=2"`
	Birthday *string `json:"birthday,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateProfileRequest) Input() (services.ProfileInput, error) {
	birthday, err := parseOptionalBirthday(r.Birthday)
	if err != nil {
		return services.ProfileInput{}, err
	}

	in := services.ProfileInput{Name: r.Name, Birthday: birthday}
	if r.Gender != nil {
		g := models.Gender(*r.Gender)
		in.Gender = &g
	}
	return in, nil
}

type GetUserRequest struct {
	Login string `json:"login" binding:"required,max=50"`
}

type DeleteUserRequest struct {
	Login string `json:"login" binding:"required,max=50"`
	Soft  *bool  `json:"soft,omitempty"`
}

// IsSoft reports whether the deletion keeps the record. Soft is the default.
func (r *DeleteUserRequest) IsSoft() bool {
	return r.Soft == nil || *r.Soft
}

type RestoreUserRequest struct {
	Login string `json:"login" binding:"required,max=50"`
}

// ParseBirthday parses a wire date and rejects dates in the future.
func ParseBirthday(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birthday: %w", common.ErrorValidation, err)
	}
	if t.After(models.DateOnly(time.Now().UTC())) {
		return time.Time{}, fmt.Errorf("%w: birthday is in the future", common.ErrorValidation)
	}
	return t, nil
}

func parseOptionalBirthday(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseBirthday(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

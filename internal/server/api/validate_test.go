package api

import (
	"testing"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func validCreate() *CreateUserRequest {
	return &CreateUserRequest{
		Login:    "bob42",
		Password: "Secret1",
		Name:     "Bob",
		Gender:   intPtr(1),
		Birthday: strPtr("1990-05-17"),
	}
}

func TestValidate_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateUserRequest)
		wantErr string
	}{
		{name: "ok", mutate: func(r *CreateUserRequest) {}},
		{name: "cyrillic name", mutate: func(r *CreateUserRequest) { r.Name = "Борис" }},
		{name: "gender zero is present", mutate: func(r *CreateUserRequest) { r.Gender = intPtr(0) }},
		{name: "no birthday", mutate: func(r *CreateUserRequest) { r.Birthday = nil }},
		{name: "missing login", mutate: func(r *CreateUserRequest) { r.Login = "" }, wantErr: "login is required"},
		{name: "login with symbols", mutate: func(r *CreateUserRequest) { r.Login = "bob!" }, wantErr: "login must contain only latin letters and digits"},
		{name: "short password", mutate: func(r *CreateUserRequest) { r.Password = "abc" }, wantErr: "password must satisfy min=6"},
		{name: "name with digits", mutate: func(r *CreateUserRequest) { r.Name = "Bob2" }, wantErr: "name must contain only latin or cyrillic letters"},
		{name: "missing gender", mutate: func(r *CreateUserRequest) { r.Gender = nil }, wantErr: "gender is required"},
		{name: "gender out of range", mutate: func(r *CreateUserRequest) { r.Gender = intPtr(3) }, wantErr: "gender must satisfy max=2"},
		{name: "bad date", mutate: func(r *CreateUserRequest) { r.Birthday = strPtr("17.05.1990") }, wantErr: "birthday must be a date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreate()
			tt.mutate(r)

			err := Validate(r)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_LongLogin(t *testing.T) {
	r := validCreate()
	r.Login = "a12345678901234567890123456789012345678901234567890"

	err := Validate(r)
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "login must satisfy max=50")
}

func TestValidate_UpdateProfile(t *testing.T) {
	assert.NoError(t, Validate(&UpdateProfileRequest{Login: "bob"}), "all fields optional")
	assert.NoError(t, Validate(&UpdateProfileRequest{Login: "bob", Name: strPtr("Robert"), Gender: intPtr(2)}))
	assert.ErrorIs(t, Validate(&UpdateProfileRequest{Login: "bob", Name: strPtr("R2D2")}), common.ErrorValidation)
	assert.ErrorIs(t, Validate(&UpdateProfileRequest{}), common.ErrorValidation)
}

func TestValidate_OptionalSoft(t *testing.T) {
	assert.NoError(t, Validate(&DeleteUserRequest{Login: "bob", Soft: boolPtr(false)}))
}

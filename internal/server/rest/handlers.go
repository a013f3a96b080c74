package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// decode binds the JSON body into req and validates it. fill copies path
// values in; it runs before binding so required path fields are present and
// again after it so the path wins over the body. On failure the error
// response is already written.
func (s *Server) decode(c *gin.Context, req any, fill func()) bool {
	if fill != nil {
		fill()
	}
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		if !errors.Is(err, common.ErrorValidation) {
			err = fmt.Errorf("%w: malformed body: %w", common.ErrorValidation, err)
		}
		s.writeError(c, err)
		return false
	}
	if fill == nil {
		return true
	}

	fill()
	if err := api.Validate(req); err != nil {
		s.writeError(c, err)
		return false
	}
	return true
}

func (s *Server) health(c *gin.Context) {
	if s.ping != nil {
		if err := s.ping(c.Request.Context()); err != nil {
			s.logger.Error(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) login(c *gin.Context) {
	var req api.LoginRequest
	if !s.decode(c, &req, nil) {
		return
	}

	res, err := s.users.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		User:        api.NewAuthenticatedUser(res.User),
	})
}

func (s *Server) createUser(c *gin.Context) {
	var req api.CreateUserRequest
	if !s.decode(c, &req, nil) {
		return
	}

	in, err := req.Input()
	if err != nil {
		s.writeError(c, err)
		return
	}

	u, err := s.users.CreateUser(c.Request.Context(), in, requester(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.NewUserSummary(u))
}

func (s *Server) listActive(c *gin.Context) {
	list, err := s.users.ListActiveUsers(c.Request.Context(), requester(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewUserList(list))
}

func (s *Server) listOlderThan(c *gin.Context) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		s.writeError(c, fmt.Errorf("%w: age must be an integer", common.ErrorValidation))
		return
	}

	list, err := s.users.ListUsersOlderThan(c.Request.Context(), age, requester(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewUserList(list))
}

func (s *Server) getUser(c *gin.Context) {
	req := api.GetUserRequest{Login: c.Param("login")}
	if err := api.Validate(&req); err != nil {
		s.writeError(c, err)
		return
	}

	u, err := s.users.GetUserByLogin(c.Request.Context(), req.Login, requester(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewUserDetail(u))
}

func (s *Server) getByCredentials(c *gin.Context) {
	var req api.LoginRequest
	if !s.decode(c, &req, nil) {
		return
	}

	u, err := s.users.GetUserByCredentials(c.Request.Context(), req.Login, req.Password, requester(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewAuthenticatedUser(u))
}

func (s *Server) updateName(c *gin.Context) {
	var req api.UpdateNameRequest
	if !s.decode(c, &req, func() { req.Login = c.Param("login") }) {
		return
	}
	u, err := s.users.UpdateName(c.Request.Context(), req.Login, req.Name, requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) updateGender(c *gin.Context) {
	var req api.UpdateGenderRequest
	if !s.decode(c, &req, func() { req.Login = c.Param("login") }) {
		return
	}
	u, err := s.users.UpdateGender(c.Request.Context(), req.Login, models.Gender(*req.Gender), requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) updateBirthday(c *gin.Context) {
	var req api.UpdateBirthdayRequest
	if !s.decode(c, &req, func() { req.Login = c.Param("login") }) {
		return
	}

	birthday, err := api.ParseBirthday(req.Birthday)
	if err != nil {
		s.writeError(c, err)
		return
	}

	u, err := s.users.UpdateBirthday(c.Request.Context(), req.Login, birthday, requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) updatePassword(c *gin.Context) {
	var req api.UpdatePasswordRequest
	if !s.decode(c, &req, func() { req.Login = c.Param("login") }) {
		return
	}

	if _, err := s.users.UpdatePassword(c.Request.Context(), req.Login, req.Password, requester(c)); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateLogin(c *gin.Context) {
	var req api.UpdateLoginRequest
	if !s.decode(c, &req, func() { req.Login = c.Param("login") }) {
		return
	}
	u, err := s.users.UpdateLogin(c.Request.Context(), req.Login, req.NewLogin, requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req api.UpdateProfileRequest
	if !s.decode(c, &req, func() { req.Login = c.Param("login") }) {
		return
	}

	in, err := req.Input()
	if err != nil {
		s.writeError(c, err)
		return
	}

	u, err := s.users.UpdateProfile(c.Request.Context(), req.Login, in, requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) deleteUser(c *gin.Context) {
	req := api.DeleteUserRequest{Login: c.Param("login")}
	if raw, ok := c.GetQuery("soft"); ok {
		soft, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(c, fmt.Errorf("%w: soft must be a boolean", common.ErrorValidation))
			return
		}
		req.Soft = &soft
	}
	if err := api.Validate(&req); err != nil {
		s.writeError(c, err)
		return
	}

	u, err := s.users.DeleteUser(c.Request.Context(), req.Login, req.IsSoft(), requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) restoreUser(c *gin.Context) {
	req := api.RestoreUserRequest{Login: c.Param("login")}
	if err := api.Validate(&req); err != nil {
		s.writeError(c, err)
		return
	}

	u, err := s.users.RestoreUser(c.Request.Context(), req.Login, requester(c))
	s.writeUser(c, u, err)
}

func (s *Server) writeUser(c *gin.Context, u *models.User, err error) {
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.NewUserSummary(u))
}

package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/server/api"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrLoginAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrAccessDenied), errors.Is(err, common.ErrUserRevoked):
		return http.StatusForbidden
	case errors.Is(err, common.ErrInvalidAge), errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status code and writes it. Unexpected errors are
// logged and their details are not sent to the client.
func (s *Server) writeError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		msg = "internal error"
	}
	c.JSON(code, api.ErrorResponse{Error: msg})
}

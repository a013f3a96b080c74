package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{common.ErrLoginAlreadyExists, http.StatusConflict},
		{common.ErrUserNotFound, http.StatusNotFound},
		{common.ErrAccessDenied, http.StatusForbidden},
		{common.ErrUserRevoked, http.StatusForbidden},
		{common.ErrInvalidAge, http.StatusBadRequest},
		{fmt.Errorf("%w: name", common.ErrorValidation), http.StatusBadRequest},
		{common.ErrorUnauthorized, http.StatusUnauthorized},
		{common.ErrTokenExpired, http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", common.ErrorInternal, errors.New("db down")), http.StatusInternalServerError},
		{errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

type failingService struct {
	UserService
}

func (failingService) ListActiveUsers(context.Context, string) ([]*models.User, error) {
	return nil, fmt.Errorf("%w: %w", common.ErrorInternal, errors.New("connection reset"))
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(":0", nopLogger{}, failingService{}, secret, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/active", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "root"))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

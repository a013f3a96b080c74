package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requesterKey    = "requester"
	requestIDHeader = "X-Request-ID"
)

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logging.WithFields(c.Request.Context(), "request_id", id))

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

// authenticate resolves the Bearer token into the requester login. When
// required is false a request without Authorization passes as anonymous,
// but a bad token is still rejected.
func (s *Server) authenticate(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				abortUnauthorized(c, "missing token")
				return
			}
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			abortUnauthorized(c, "malformed authorization header")
			return
		}

		login, err := auth.GetLoginFromToken(token, s.jwtSecret)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "token expired"
			}
			abortUnauthorized(c, msg)
			return
		}

		c.Set(requesterKey, login)
		c.Request = c.Request.WithContext(logging.WithFields(c.Request.Context(), "requester", login))
		c.Next()
	}
}

// requester returns the authenticated login, or "" for anonymous calls.
func requester(c *gin.Context) string {
	return c.GetString(requesterKey)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// Package rest exposes the user service over HTTP with gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/server/models"
	"github.com/dmitrijs2005/usermanager/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// UserService is the part of services.UserService the HTTP layer calls.
type UserService interface {
	Authenticate(ctx context.Context, login, password string) (*services.AuthResult, error)
	CreateUser(ctx context.Context, in services.CreateUserInput, requester string) (*models.User, error)
	UpdateName(ctx context.Context, login, name, requester string) (*models.User, error)
	UpdateGender(ctx context.Context, login string, gender models.Gender, requester string) (*models.User, error)
	UpdateBirthday(ctx context.Context, login string, birthday time.Time, requester string) (*models.User, error)
	UpdatePassword(ctx context.Context, login, password, requester string) (*models.User, error)
	UpdateLogin(ctx context.Context, login, newLogin, requester string) (*models.User, error)
	UpdateProfile(ctx context.Context, login string, in services.ProfileInput, requester string) (*models.User, error)
	GetUserByLogin(ctx context.Context, login, requester string) (*models.User, error)
	GetUserByCredentials(ctx context.Context, login, password, requester string) (*models.User, error)
	ListActiveUsers(ctx context.Context, requester string) ([]*models.User, error)
	ListUsersOlderThan(ctx context.Context, age int, requester string) ([]*models.User, error)
	DeleteUser(ctx context.Context, login string, soft bool, requester string) (*models.User, error)
	RestoreUser(ctx context.Context, login, requester string) (*models.User, error)
}

// Pinger reports storage health for /healthz. A nil Pinger is always healthy.
type Pinger func(ctx context.Context) error

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	jwtSecret []byte
	origins   []string
	ping      Pinger
}

func NewServer(address string, l logging.Logger, us UserService, secretKey string, origins []string, ping Pinger) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
		origins:   origins,
		ping:      ping,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())
	router.Use(cors.New(s.corsConfig()))

	router.GET("/healthz", s.health)

	apiGroup := router.Group("/api")
	apiGroup.POST("/auth/login", s.login)

	users := apiGroup.Group("/users")
	{
		users.POST("", s.authenticate(false), s.createUser)

		authed := users.Group("", s.authenticate(true))
		authed.GET("/active", s.listActive)
		authed.GET("/older-than/:age", s.listOlderThan)
		authed.POST("/credentials", s.getByCredentials)
		authed.GET("/:login", s.getUser)
		authed.PUT("/:login/name", s.updateName)
		authed.PUT("/:login/gender", s.updateGender)
		authed.PUT("/:login/birthday", s.updateBirthday)
		authed.PUT("/:login/password", s.updatePassword)
		authed.PUT("/:login/login", s.updateLogin)
		authed.PUT("/:login/profile", s.updateProfile)
		authed.DELETE("/:login", s.deleteUser)
		authed.POST("/:login/restore", s.restoreUser)
	}

	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}

	if len(s.origins) == 0 || (len(s.origins) == 1 && s.origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.origins
	}
	return cfg
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

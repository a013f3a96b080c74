// Package server wires storage, the user service and both transports, and
// runs them until the process is signalled to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/usermanager/internal/cryptox"
	"github.com/dmitrijs2005/usermanager/internal/logging"
	"github.com/dmitrijs2005/usermanager/internal/server/config"
	"github.com/dmitrijs2005/usermanager/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usermanager/internal/server/rest"
	"github.com/dmitrijs2005/usermanager/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/usermanager/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(c.LogBackend, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	ctx := context.Background()

	db, rm, err := openStorage(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if db == nil {
		logger.Warn(ctx, "No database DSN configured, using in-memory storage")
	}

	us := services.NewUserService(db, rm, cryptox.NewBcryptHasher(c.BcryptCost), c)

	if c.AdminLogin != "" {
		created, err := us.EnsureAdmin(ctx, c.AdminLogin, c.AdminPassword)
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("admin bootstrap error: %w", err)
		}
		if created {
			logger.Info(ctx, "Created administrator", "login", c.AdminLogin)
		}
	}

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

// openStorage connects to Postgres and applies migrations when dsn is set,
// and falls back to the in-memory store otherwise. db is nil in that case.
func openStorage(ctx context.Context, dsn string) (*sql.DB, repomanager.RepositoryManager, error) {
	if dsn == "" {
		return nil, repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, nil, err
	}

	return db, rm, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) ping(ctx context.Context) error {
	if app.db == nil {
		return nil
	}
	return app.db.PingContext(ctx)
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.SecretKey, app.config.CORSAllowedOrigins, app.ping)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves HTTP and gRPC until ctx is done, a signal arrives or either
// server fails, then closes the database.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	gin.SetMode(gin.ReleaseMode)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}

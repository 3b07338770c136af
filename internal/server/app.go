// Package server assembles the store, services and transports of the
// motorpool API and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/auth"
	"github.com/dmitrijs2005/motorpool/internal/server/config"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/motorpool/internal/server/rest"
	"github.com/dmitrijs2005/motorpool/internal/server/services"
	"github.com/dmitrijs2005/motorpool/internal/server/validation"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/motorpool/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *rest.Server
	health *gs.HealthServer
}

// NewApp connects the store, applies migrations and builds both servers.
// With the in-memory DSN no database is opened.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	var (
		m     repomanager.RepositoryManager
		store rest.Pinger
	)
	if c.InMemory() {
		logger.Warn(ctx, "Using in-memory store, data is lost on exit")
		m = repomanager.NewMemoryRepositoryManager()
	} else {
		db, err := repomanager.Open(ctx, c.DatabaseDSN, c.DBConnectRetries, c.DBConnectMaxDelay, logger)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		store = db
		m = repomanager.NewPostgresRepositoryManager()
	}

	if err := m.RunMigrations(ctx, app.db); err != nil {
		app.closeDB(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	secret := []byte(c.SecretKey)
	if len(secret) == 0 {
		logger.Warn(ctx, "Secret key is empty, every login will fail")
	}

	gin.SetMode(gin.ReleaseMode)
	router := rest.NewRouter(rest.Deps{
		Auth:           services.NewAuthService(app.db, m, auth.NewIssuer(secret, c.AccessTokenValidityDuration), logger),
		Administrators: services.NewAdministratorService(app.db, m, logger),
		Vehicles:       services.NewVehicleService(app.db, m, logger),
		Gate:           auth.NewGate(auth.NewValidator(secret)),
		Validator:      validation.New(),
		Store:          store,
		Logger:         logger,
	})

	app.http = rest.NewServer(c.EndpointAddrHTTP, router, logger, c.ShutdownTimeout)
	app.health = gs.NewHealthServer(c.EndpointAddrGRPC, logger, store)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or
// either server fails. The first server error is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	start := func(name string, run func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(ctx); err != nil {
				app.logger.Error(ctx, "server failed", "server", name, "error", err)
				once.Do(func() { firstErr = fmt.Errorf("%s: %w", name, err) })
				cancelFunc()
			}
		}()
	}

	start("http", app.http.Run)
	start("grpc", app.health.Run)

	wg.Wait()

	app.closeDB(ctx)
	app.logger.Info(ctx, "App stopped")

	return firstErr
}

func (app *App) closeDB(ctx context.Context) {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}

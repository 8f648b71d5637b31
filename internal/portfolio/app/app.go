package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/foliohq/folio/internal/portfolio/http"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/internal/portfolio/store/drivers/sqlite"
	"github.com/foliohq/folio/pkg/identity"
	"github.com/foliohq/folio/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portfolio service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *identity.KeySet
	provider *identity.JWKSProvider
	verifier identity.Verifier

	// Services
	rolesService        *service.RolesService
	directoryService    *service.DirectoryService
	inviteService       *service.InviteService
	contentService      *service.ContentService
	contactService      *service.ContactService
	analyticsService    *service.AnalyticsService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router

	// cancels the JWKS refresh loop on shutdown
	stopProvider context.CancelFunc
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "folio",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.Issuer == "" || cfg.JWKSURL == "" {
		return nil, errors.New("FOLIO_ISSUER and FOLIO_JWKS_URL must be set")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initIdentity()
	app.initServices()

	// Seed the built-in roles before serving; provisioning depends on the
	// default role existing.
	if err := app.rolesService.Seed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	// Start the JWKS refresh loop. The first fetch happens inside Run; a
	// cold key set just means admin requests fail closed until it lands.
	ctx, cancel := context.WithCancel(context.Background())
	app.stopProvider = cancel
	go func() {
		if err := app.provider.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Error("JWKS provider stopped", "error", err)
		}
	}()

	app.housekeepingService.Start()

	app.logger.Info("portfolio service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portfolio service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.stopProvider != nil {
		app.stopProvider()
	}
	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portfolio service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initIdentity wires the external identity provider: a key set kept fresh
// from the JWKS endpoint and a verifier bound to the expected issuer.
func (app *Application) initIdentity() {
	app.keys = identity.NewKeySet()
	app.provider = identity.NewJWKSProvider(app.cfg.JWKSURL, app.keys, app.cfg.JWKSRefresh)
	app.verifier = identity.NewJWTVerifier(app.keys, app.cfg.Issuer, app.cfg.Audience)
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.rolesService = &service.RolesService{Store: app.db}
	app.directoryService = &service.DirectoryService{Store: app.db}
	app.inviteService = &service.InviteService{Store: app.db}
	app.contentService = &service.ContentService{Store: app.db}
	app.contactService = &service.ContactService{Store: app.db}
	app.analyticsService = &service.AnalyticsService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.ContactRetention,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.RolesService = app.rolesService
	router.DirectoryService = app.directoryService
	router.InviteService = app.inviteService
	router.ContentService = app.contentService
	router.ContactService = app.contactService
	router.AnalyticsService = app.analyticsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pulsefit/fitgate/internal/onboarding/catalog"
	httpapi "github.com/pulsefit/fitgate/internal/onboarding/http"
	"github.com/pulsefit/fitgate/internal/onboarding/service"
	"github.com/pulsefit/fitgate/internal/onboarding/store"
	"github.com/pulsefit/fitgate/internal/onboarding/store/drivers/sqlite"
	"github.com/pulsefit/fitgate/pkg/jwtx"
	"github.com/pulsefit/fitgate/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the onboarding service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	catalog *catalog.Catalog
	keys    *jwtx.KeySet
	signer  *jwtx.EdDSASigner

	// Services
	onboardingService   *service.OnboardingService
	loginService        *service.LoginService
	entitlementService  *service.EntitlementService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "fitgate",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// The catalog is embedded; a broken one is a deploy error.
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	app.catalog = cat

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("fitgate service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down fitgate service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("fitgate service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

// initKeys generates the ephemeral session-token signer. Sessions are
// short-lived, so losing keys on restart just means members log in again
// with their access code.
func (app *Application) initKeys() error {
	signer, err := jwtx.NewEphemeralEdDSASigner()
	if err != nil {
		return fmt.Errorf("failed to generate session signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	app.signer = signer
	app.keys = keys

	app.logger.Info("session signing key generated", "kid", signer.KID())
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	sessions := service.NewSessionRegistry()

	app.entitlementService = &service.EntitlementService{Catalog: app.catalog}

	app.onboardingService = &service.OnboardingService{
		Store:        app.db,
		Catalog:      app.catalog,
		Sessions:     sessions,
		Sequencer:    &service.Sequencer{Catalog: app.catalog},
		Classifier:   &service.Classifier{Catalog: app.catalog},
		Entitlements: app.entitlementService,
	}

	app.loginService = &service.LoginService{
		Store:  app.db,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		sessions,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.SessionMaxIdle,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		jwtx.NewVerifierEdDSA(app.keys, app.cfg.Issuer),
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AdminKeyHash = app.cfg.AdminKeyHash
	router.OnboardingService = app.onboardingService
	router.LoginService = app.loginService
	router.EntitlementService = app.entitlementService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

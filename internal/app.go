// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	router "demobank/internal/api"
	"demobank/internal/api/handler"
	"demobank/internal/config"
	"demobank/internal/repository"
	"demobank/internal/repository/memory"
	"demobank/internal/seed"
	"demobank/internal/service"
	"demobank/internal/session"
	"demobank/internal/util"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	Store  repository.Store

	// Repositories
	UserRepository     repository.UserRepository
	AccountRepository  repository.AccountRepository
	TransferRepository repository.TransferRepository

	// Services
	AuthService     service.AuthService
	AccountService  service.AccountService
	TransferService service.TransferService

	// Sessions
	Sessions *session.Manager

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Initialize the in-memory store and repositories
	app.Store = memory.NewStore()
	app.UserRepository = memory.NewUserRepository()
	app.AccountRepository = memory.NewAccountRepository()
	app.TransferRepository = memory.NewTransferRepository()
	app.Logger.Info("In-memory store and repositories initialized.")

	// 4. Load demo seed data
	if err := seed.Load(ctx, app.Store, app.UserRepository, app.AccountRepository); err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}
	app.Logger.Info("Seed data loaded.")

	// 5. Initialize sessions and services
	app.Sessions = session.NewManager(cfg.SessionSecret, cfg.SessionTTL())
	app.AuthService = service.NewAuthService(app.Store, app.UserRepository)
	app.AccountService = service.NewAccountService(app.Store, app.AccountRepository)
	app.TransferService = service.NewTransferService(app.Store, app.AccountRepository, app.TransferRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Sessions, app.Logger)
	bankHandler := handler.NewBankHandler(app.AccountService, app.TransferService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, bankHandler, app.Sessions, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources. All state is in
// process memory, so there is nothing to flush; it is discarded on exit.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Application shut down gracefully; in-memory state discarded.")
	return nil
}

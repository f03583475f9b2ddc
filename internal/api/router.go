// internal/api/router.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"demobank/internal/api/handler"
	"demobank/internal/session"
)

var startTime = time.Now()

// NewRouter sets up and returns the HTTP router.
func NewRouter(authHandler *handler.AuthHandler, bankHandler *handler.BankHandler, sessions *session.Manager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"uptime": time.Since(startTime).Seconds(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		// Everything below requires an authenticated session.
		r.Group(func(r chi.Router) {
			r.Use(handler.SessionMiddleware(sessions))
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
			r.Get("/accounts", bankHandler.ListAccounts)
			r.Post("/transfer", bankHandler.Transfer)
			r.Get("/transfers", bankHandler.ListTransfers)
		})
	})

	return r
}

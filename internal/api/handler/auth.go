// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"demobank/internal/service"
	"demobank/internal/session"
	"demobank/internal/util"
)

// AuthHandler handles login, logout, and current-user requests.
type AuthHandler struct {
	auth     service.AuthService
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthService, sessions *session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse is the wire form of an authenticated user.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login handles the login request and sets the session cookie.
// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidCredentials)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessions.TTL()),
	})

	respondWithJSON(h.logger, w, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	})
}

// Logout handles the logout request by expiring the session cookie.
// POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	respondWithJSON(h.logger, w, http.StatusOK, map[string]bool{"ok": true})
}

// Me returns the authenticated user for the current session.
// GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthenticated)
		return
	}

	user, err := h.auth.UserByID(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	})
}

// internal/api/handler/middleware.go
package handler

import (
	"context"
	"net/http"

	"demobank/internal/session"
)

// userIDContextKey is a private type so context values cannot collide.
type userIDContextKey struct{}

// SessionMiddleware authenticates requests from the session cookie and puts
// the user id into the request context. Requests without a valid session get
// 401 and never reach the handler.
func SessionMiddleware(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				unauthorized(w)
				return
			}
			userID, err := sessions.Verify(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}

// UserID retrieves the authenticated user id from the request context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDContextKey{}).(int64)
	return id, ok
}

// internal/session/manager.go
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"demobank/internal/util"
)

// CookieName is the session cookie issued on login.
const CookieName = "demobank_session"

// Manager issues and verifies signed session tokens (HS256 over the configured
// secret). Tokens are stateless: logout is handled by expiring the cookie on
// the client, and all sessions die with the secret on restart.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing with secret and issuing tokens valid
// for ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a signed token carrying the user id as its subject.
func (m *Manager) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, signing method, and expiry, and returns the user id
// the token was issued for. Any failure maps to ErrUnauthenticated.
func (m *Manager) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, util.ErrUnauthenticated
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, util.ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, util.ErrUnauthenticated
	}
	return userID, nil
}

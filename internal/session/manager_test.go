// internal/session/manager_test.go
package session

import (
	"testing"
	"time"

	"demobank/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, util.ErrUnauthenticated)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue(42)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, util.ErrUnauthenticated)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, util.ErrUnauthenticated)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(tokenString)
		assert.ErrorIs(t, err, util.ErrUnauthenticated, "token %q must be rejected", tokenString)
	}
}

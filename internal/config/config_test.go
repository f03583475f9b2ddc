// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_TTL_MINUTES", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "dev-secret", cfg.SessionSecret)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
	assert.Equal(t, time.Hour, cfg.SessionTTL())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "something-else")
	t.Setenv("SESSION_TTL_MINUTES", "15")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "something-else", cfg.SessionSecret)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL())
}

func TestLoadConfigRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_MINUTES", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds all application-wide configuration, loaded from environment
// variables.
type AppConfig struct {
	ServerPort        string
	SessionSecret     string
	SessionTTLMinutes int
}

// LoadConfig loads configuration from environment variables with sane demo
// defaults. The default session secret matches the demo's development value
// and must be overridden for anything beyond local use.
func LoadConfig() (*AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SESSION_SECRET", "dev-secret")
	v.SetDefault("SESSION_TTL_MINUTES", 60)

	_ = v.BindEnv("SERVER_PORT")
	_ = v.BindEnv("SESSION_SECRET")
	_ = v.BindEnv("SESSION_TTL_MINUTES")

	cfg := &AppConfig{
		ServerPort:        v.GetString("SERVER_PORT"),
		SessionSecret:     v.GetString("SESSION_SECRET"),
		SessionTTLMinutes: v.GetInt("SESSION_TTL_MINUTES"),
	}

	if cfg.ServerPort == "" {
		return nil, fmt.Errorf("SERVER_PORT must not be empty")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if cfg.SessionTTLMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", cfg.SessionTTLMinutes)
	}

	return cfg, nil
}

// SessionTTL returns the configured session lifetime as a duration.
func (c *AppConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

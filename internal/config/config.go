package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/devmode"
	"github.com/wanderlust/travel-client/session"
)

// Config holds the settings shared by travelctl and travel-devserver.
// Environment variables are parsed with the TRAVEL_ prefix, e.g.
// TRAVEL_API_BASE_URL, TRAVEL_FALLBACK_MODE.
type Config struct {
	// Backend
	APIBaseURL   string        `envconfig:"API_BASE_URL" default:"http://localhost:8091"`
	ImageBaseURL string        `envconfig:"IMAGE_BASE_URL"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	ReadRetries  int           `envconfig:"READ_RETRIES" default:"1"`

	// Circuit breaker; zero failures disables it.
	BreakerFailures uint32        `envconfig:"BREAKER_FAILURES" default:"0"`
	BreakerOpenFor  time.Duration `envconfig:"BREAKER_OPEN_FOR" default:"30s"`

	FallbackMode string `envconfig:"FALLBACK_MODE" default:"auto"`

	// Session persistence
	SessionBackend string `envconfig:"SESSION_BACKEND" default:"file"`
	SessionPath    string `envconfig:"SESSION_PATH"`

	// Logging
	LogFile string `envconfig:"LOG_FILE"`
	Debug   bool   `envconfig:"DEBUG" default:"false"`

	// Dev backend
	DevServerPort        int      `envconfig:"DEVSERVER_PORT" default:"8091"`
	DevServerAdminKey    string   `envconfig:"DEVSERVER_ADMIN_KEY"`
	DevServerPublicURL   string   `envconfig:"DEVSERVER_PUBLIC_URL"`
	DevServerCORSOrigins []string `envconfig:"DEVSERVER_CORS_ORIGINS"`
}

// LoadDotEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// New parses the environment and validates the result.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TRAVEL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_base_url", cfg.APIBaseURL).
		Str("fallback_mode", cfg.FallbackMode).
		Str("session_backend", cfg.SessionBackend).
		Str("session_path", cfg.SessionPath).
		Bool("log_file", cfg.LogFile != "").
		Msg("configuration loaded")

	return &cfg, nil
}

// ResolveDefaults validates enumerated settings and fills derived ones.
func (c *Config) ResolveDefaults() error {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:8091"
	}
	mode, err := fallback.ParseMode(c.FallbackMode)
	if err != nil {
		return err
	}
	c.FallbackMode = string(mode)

	switch c.SessionBackend {
	case "":
		c.SessionBackend = session.BackendFile
	case session.BackendFile, session.BackendSQLite, session.BackendMemory:
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND: %s", c.SessionBackend)
	}
	if c.SessionPath == "" && c.SessionBackend != session.BackendMemory {
		p, err := session.DefaultPath(c.SessionBackend)
		if err != nil {
			return err
		}
		c.SessionPath = p
	}

	if c.ReadRetries < 1 {
		c.ReadRetries = 1
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}
	if c.DevServerAdminKey == "" {
		c.DevServerAdminKey = devmode.AdminKey
	}
	return nil
}

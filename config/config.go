package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the console.
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`

	FirebaseProjectID string `envconfig:"FIREBASE_PROJECT_ID"`
	// Web API key used for password sign-in against the Identity Toolkit API.
	FirebaseAPIKey string `envconfig:"FIREBASE_WEB_API_KEY"`
	// Service account credentials, either raw JSON or base64-encoded JSON.
	// When both are empty, application default credentials are used.
	ServiceAccountJSON   string `envconfig:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountBase64 string `envconfig:"FIREBASE_SERVICE_ACCOUNT_BASE64"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	SessionCookieSecure bool `envconfig:"SESSION_COOKIE_SECURE"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.IsProduction() {
		if cfg.FirebaseProjectID == "" {
			return nil, errors.New("FIREBASE_PROJECT_ID must be set in production")
		}
		if cfg.FirebaseAPIKey == "" {
			return nil, errors.New("FIREBASE_WEB_API_KEY must be set in production")
		}
		cfg.SessionCookieSecure = true
	}
	return &cfg, nil
}

// IsProduction returns true when the console runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

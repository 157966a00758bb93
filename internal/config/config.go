package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"storefront/internal/gateway"
)

// Environment represents the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// Config holds runtime configuration parsed from environment variables,
// optionally seeded from a .env file for local runs.
type Config struct {
	Environment     Environment   `envconfig:"APP_ENV" default:"development"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`

	// API configures the remote catalog gateway (API_BASE_URL, API_TIMEOUT).
	API gateway.Config
	// Login configures the simulated authenticator (LOGIN_USERNAME, ...).
	Login gateway.LoginConfig
}

// Load builds Config with defaults, overridden by the environment.
// A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

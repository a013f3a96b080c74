// Package config handles configuration for the server: defaults, an optional
// JSON or YAML file, USERMANAGER_* environment variables and command-line
// flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the user manager server.
//
// Fields:
//   - EndpointAddrHTTP / EndpointAddrGRPC: bind addresses of the two transports.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AdminLogin / AdminPassword: optional bootstrap administrator.
type Config struct {
	EndpointAddrHTTP            string
	EndpointAddrGRPC            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	BcryptCost                  int
	LogLevel                    string
	LogBackend                  string
	CORSAllowedOrigins          []string
	AdminLogin                  string
	AdminPassword               string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.CORSAllowedOrigins = []string{"*"}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key must not be empty"))
	}
	if c.AccessTokenValidityDuration <= 0 {
		errs = append(errs, fmt.Errorf("access token validity must be positive, got %s", c.AccessTokenValidityDuration))
	}
	if c.LogBackend != "slog" && c.LogBackend != "zap" {
		errs = append(errs, fmt.Errorf("unknown log backend %q", c.LogBackend))
	}
	if (c.AdminLogin == "") != (c.AdminPassword == "") {
		errs = append(errs, errors.New("admin login and password must be set together"))
	}

	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v7"
)

const envPrefix = "USERMANAGER_"

// envConfig lists the variables read under envPrefix. Unset or empty
// variables leave the current value alone.
type envConfig struct {
	HTTPAddr      string        `env:"HTTP_ADDR"`
	GRPCAddr      string        `env:"GRPC_ADDR"`
	DatabaseDSN   string        `env:"DATABASE_DSN"`
	SecretKey     string        `env:"SECRET_KEY"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"`
	BcryptCost    int           `env:"BCRYPT_COST"`
	LogLevel      string        `env:"LOG_LEVEL"`
	LogBackend    string        `env:"LOG_BACKEND"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:","`
	AdminLogin    string        `env:"ADMIN_LOGIN"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
}

func parseEnv(config *Config) error {
	var ec envConfig
	if err := env.Parse(&ec, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("env config: %w", err)
	}

	setString(&config.EndpointAddrHTTP, ec.HTTPAddr)
	setString(&config.EndpointAddrGRPC, ec.GRPCAddr)
	setString(&config.DatabaseDSN, ec.DatabaseDSN)
	setString(&config.SecretKey, ec.SecretKey)
	setString(&config.LogLevel, ec.LogLevel)
	setString(&config.LogBackend, ec.LogBackend)
	setString(&config.AdminLogin, ec.AdminLogin)
	setString(&config.AdminPassword, ec.AdminPassword)

	if ec.TokenTTL != 0 {
		config.AccessTokenValidityDuration = ec.TokenTTL
	}
	if ec.BcryptCost != 0 {
		config.BcryptCost = ec.BcryptCost
	}
	var origins []string
	for _, o := range ec.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) > 0 {
		config.CORSAllowedOrigins = origins
	}

	return nil
}

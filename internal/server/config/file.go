package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
	"github.com/dmitrijs2005/usermanager/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Interval fields use
// timex.Duration, so both "15m" and integer nanoseconds are accepted.
// Fields left out of the file keep their current values.
type FileConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	BcryptCost                  int            `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	LogLevel                    string         `json:"log_level" yaml:"log_level"`
	LogBackend                  string         `json:"log_backend" yaml:"log_backend"`
	CORSAllowedOrigins          []string       `json:"cors_allowed_origins" yaml:"cors_allowed_origins"`
	AdminLogin                  string         `json:"admin_login" yaml:"admin_login"`
	AdminPassword               string         `json:"admin_password" yaml:"admin_password"`
}

// parseFile loads the file named by -c/-config or USERMANAGER_CONFIG, if any. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func parseFile(config *Config) error {
	path := flagx.ConfigPath(envPrefix + "CONFIG")
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	c.applyTo(config)
	return nil
}

func (c *FileConfig) applyTo(config *Config) {
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.AdminLogin, c.AdminLogin)
	setString(&config.AdminPassword, c.AdminPassword)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

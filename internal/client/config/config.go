// Package config loads settings for the usermanager command-line client.
package config

import "time"

// Config holds runtime settings for the CLI.
type Config struct {
	// ServerEndpointAddr is the host:port of the gRPC endpoint.
	ServerEndpointAddr string
	// RequestTimeout bounds every call to the server.
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if -c/-config is given) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

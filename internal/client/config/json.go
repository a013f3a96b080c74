package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
	"github.com/dmitrijs2005/usermanager/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// may be given as a string like "3s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config or
// USERMANAGER_CLIENT_CONFIG. Fields absent
// from the file keep their current values.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.ConfigPath("USERMANAGER_CLIENT_CONFIG")
	if jsonConfigFile == "" {
		return nil
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

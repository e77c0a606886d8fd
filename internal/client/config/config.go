// Package config loads the settings of the Time Report client.
//
// Sources are applied in order, later ones winning: built-in defaults, the
// JSON file named by -c/-config, then command-line flags.
package config

import "time"

// Config holds runtime settings for the interactive client.
type Config struct {
	// ServerEndpointAddr is host:port of the Time Report gRPC endpoint.
	ServerEndpointAddr string
	// RequestTimeout bounds every single call to the service.
	RequestTimeout time.Duration
	// DatabasePath is the SQLite file holding the persisted session.
	DatabasePath string
	LogLevel     string
	LogFormat    string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.DatabasePath = "timereport.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
